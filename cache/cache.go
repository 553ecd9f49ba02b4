package cache

import "context"

// SlotGuard claims a dispatch slot key exactly once. Two runs
// overlapping in time see the second claim fail, so the same
// (user, contact, date, slot) is not logged twice. A claim whose log
// write failed is released so the slot is not blocked for the TTL.
type SlotGuard interface {
	ClaimSlot(ctx context.Context, key string) (bool, error)
	ReleaseSlot(ctx context.Context, key string) error
}
