package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestGuard(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisSlotGuard) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewRedisSlotGuard(rdb, ttl)
}

func TestClaimSlot_FirstClaimWins(t *testing.T) {
	_, guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	claimed, err := guard.ClaimSlot(ctx, "user:contact:2024-01-01:10:00")
	if err != nil {
		t.Fatalf("ClaimSlot returned error: %v", err)
	}
	if !claimed {
		t.Fatalf("first claim should succeed")
	}

	claimed, err = guard.ClaimSlot(ctx, "user:contact:2024-01-01:10:00")
	if err != nil {
		t.Fatalf("ClaimSlot returned error: %v", err)
	}
	if claimed {
		t.Fatalf("second claim of the same slot should fail")
	}
}

func TestClaimSlot_DistinctSlotsAreIndependent(t *testing.T) {
	_, guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	keys := []string{
		"user:contact:2024-01-01:10:00",
		"user:contact:2024-01-01:10:01",
		"user:other:2024-01-01:10:00",
	}
	for _, key := range keys {
		claimed, err := guard.ClaimSlot(ctx, key)
		if err != nil {
			t.Fatalf("ClaimSlot(%q) returned error: %v", key, err)
		}
		if !claimed {
			t.Fatalf("claim of distinct slot %q should succeed", key)
		}
	}
}

func TestReleaseSlot_MakesSlotClaimableAgain(t *testing.T) {
	_, guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	key := "user:contact:2024-01-01:10:00"
	if claimed, _ := guard.ClaimSlot(ctx, key); !claimed {
		t.Fatalf("first claim should succeed")
	}

	if err := guard.ReleaseSlot(ctx, key); err != nil {
		t.Fatalf("ReleaseSlot returned error: %v", err)
	}

	claimed, err := guard.ClaimSlot(ctx, key)
	if err != nil {
		t.Fatalf("ClaimSlot returned error: %v", err)
	}
	if !claimed {
		t.Fatalf("released slot should be claimable again")
	}
}

func TestClaimSlot_ExpiresAfterTTL(t *testing.T) {
	mr, guard := newTestGuard(t, time.Minute)
	ctx := context.Background()

	if claimed, _ := guard.ClaimSlot(ctx, "k"); !claimed {
		t.Fatalf("first claim should succeed")
	}

	mr.FastForward(2 * time.Minute)

	claimed, err := guard.ClaimSlot(ctx, "k")
	if err != nil {
		t.Fatalf("ClaimSlot returned error: %v", err)
	}
	if !claimed {
		t.Fatalf("slot should be claimable again after TTL")
	}
}
