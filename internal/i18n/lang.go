package i18n

import "strings"

type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// FromHeader normalizes a raw Accept-Language value. Anything whose
// lowercase form starts with "ar" selects Arabic, everything else
// (absent, malformed, other languages) falls back to English.
func FromHeader(value string) Lang {
	v := strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(v, "ar") {
		return Arabic
	}
	return English
}
