package services

import (
	"net/url"
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// BuildWhatsAppLink turns a phone number and a message into a wa.me
// deep-link. Phone cleaning is deliberately permissive; length and
// country-code validation happen at contact creation, not here.
func BuildWhatsAppLink(phone, message string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	// QueryEscape uses '+' for spaces; wa.me expects %20
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + encoded
}
