package slug

import (
	"fmt"
	"regexp"

	gosimpleslug "github.com/gosimple/slug"
)

func init() {
	gosimpleslug.CustomSub = map[string]string{"_": "-"}
}

// Make normalizes a store name into its base slug. It returns an empty
// string when the name has no letters or digits.
func Make(name string) string {
	return gosimpleslug.Make(name)
}

// Pattern matches the base slug itself or the base followed by a hyphen and
// an optional number, e.g. coffee-shop, coffee-shop-2, coffee-shop-.
func Pattern(base string) string {
	return fmt.Sprintf(`^(%s)((-[0-9]*)?)$`, regexp.QuoteMeta(base))
}

// Next picks the slug for a new store given how many existing slugs match
// Pattern(base). The counter is count based, not max-suffix based.
func Next(base string, count int) string {
	if count == 0 {
		return base
	}
	return WithSuffix(base, count+1)
}

func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
