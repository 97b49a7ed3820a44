package utils

import (
	"regexp"
	"strings"

	"github.com/paychain/paychain/internal/pkg/models"
)

// CountryCode is the Kenyan international dialing prefix
const CountryCode = "254"

// minPhoneLength is the canonical international length (254 + 9 digits)
const minPhoneLength = 12

// PREFIXES defines the known numbering prefixes per mobile-money network
var PREFIXES = struct {
	MPESA  []string
	AIRTEL []string
}{
	MPESA:  []string{"2547", "2541", "01", "07"},
	AIRTEL: []string{"2548", "2550", "08", "050"},
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone converts a free-form phone string to canonical
// international format (e.g. 254712345678). Normalization is idempotent:
// an already-canonical number is returned unchanged.
func NormalizePhone(phone string) (string, error) {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	if cleaned == "" {
		return "", models.ErrInvalidPhone
	}

	if strings.HasPrefix(cleaned, "0") {
		cleaned = CountryCode + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, CountryCode) {
		cleaned = CountryCode + cleaned
	}

	if len(cleaned) < minPhoneLength {
		return "", models.ErrInvalidPhone
	}

	return cleaned, nil
}

// DetectProvider classifies a phone number into a mobile-money network by
// its numbering prefix. Numbers matching neither network are rejected.
func DetectProvider(phone string) (string, error) {
	cleaned := nonDigits.ReplaceAllString(phone, "")

	for _, prefix := range PREFIXES.MPESA {
		if strings.HasPrefix(cleaned, prefix) {
			return models.ProviderMpesa, nil
		}
	}
	for _, prefix := range PREFIXES.AIRTEL {
		if strings.HasPrefix(cleaned, prefix) {
			return models.ProviderAirtel, nil
		}
	}

	// Kenyan numbers outside the tables default to M-Pesa
	if strings.HasPrefix(cleaned, CountryCode) || strings.HasPrefix(cleaned, "0") {
		return models.ProviderMpesa, nil
	}

	return "", models.ErrUnsupportedPhone
}
