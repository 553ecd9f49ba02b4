package services

import "strings"

// RenderTemplate personalizes a template body for one recipient.
// Substitution is literal and non-recursive; a body without the
// placeholder passes through unchanged.
func RenderTemplate(content, name string) string {
	return strings.ReplaceAll(content, "{name}", name)
}
