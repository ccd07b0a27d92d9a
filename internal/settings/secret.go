package settings

import "strings"

// SecretMask prefixes masked secrets. A masked value sent back on update keeps the stored secret.
const SecretMask = "••••"

// MaskSecret hides all but the last four characters of s.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return SecretMask
	}
	return SecretMask + s[len(s)-4:]
}

// IsMasked reports whether s is a value produced by MaskSecret.
func IsMasked(s string) bool {
	return strings.HasPrefix(s, SecretMask)
}
