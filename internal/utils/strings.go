package utils

// MaskPhone hides the middle of a canonical phone number, keeping the
// first 6 and last 3 digits visible (254712345678 -> 254712***678)
func MaskPhone(phone string) string {
	if len(phone) < 10 {
		return phone
	}
	return phone[:6] + "***" + phone[len(phone)-3:]
}

// Truncate limits a string to max characters
func Truncate(s string, max int) string {
	if max >= 0 && len(s) > max {
		return s[:max]
	}
	return s
}
