package monimeControllers

import "strings"

const countryCode = "232" // Sierra Leone

// NormalizePhone formats a customer phone number to international form.
// Already-international numbers (leading "+") pass through unchanged, a
// domestic trunk prefix ("0...") is replaced by +232, a bare country code
// gains a "+", and anything else gets the full +232 prefix. Total over all
// inputs and idempotent on its own output.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	if strings.HasPrefix(phone, "0") {
		return "+" + countryCode + phone[1:]
	}
	if strings.HasPrefix(phone, countryCode) {
		return "+" + phone
	}
	return "+" + countryCode + phone
}
