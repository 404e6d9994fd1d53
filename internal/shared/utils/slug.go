package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugSuffixLength   = 6
)

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatedHyphens = regexp.MustCompile(`-+`)
)

// Slugify normalizes a title into its slug form: trim, lowercase, spaces to
// hyphens, strip everything that is not a-z, 0-9 or a hyphen.
func Slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")
	normalized := repeatedHyphens.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// GenerateSlug derives the public lookup key for an article. Titles are not
// unique, so a short random suffix keeps two identical titles apart. The
// store's unique index on slug is the actual enforcement; a collision
// surfaces as a conflict and the caller regenerates.
func GenerateSlug(title string) string {
	base := Slugify(title)
	if base == "" {
		return randomSuffix()
	}
	return base + "-" + randomSuffix()
}

func randomSuffix() string {
	suffix := make([]byte, slugSuffixLength)
	max := big.NewInt(int64(len(slugSuffixAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			suffix[i] = slugSuffixAlphabet[0]
			continue
		}
		suffix[i] = slugSuffixAlphabet[n.Int64()]
	}

	return string(suffix)
}
