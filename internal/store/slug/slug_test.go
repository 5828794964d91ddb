package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Coffee Shop", expected: "coffee-shop"},
		{name: "punctuation", input: "Coffee Shop!!", expected: "coffee-shop"},
		{name: "whitespace", input: "  Coffee    Shop  ", expected: "coffee-shop"},
		{name: "accents", input: "Café Olé", expected: "cafe-ole"},
		{name: "digits", input: "Bar 42", expected: "bar-42"},
		{name: "underscores", input: "Coffee_Shop", expected: "coffee-shop"},
		{name: "repeated underscores", input: "__Coffee__Shop__", expected: "coffee-shop"},
		{name: "only punctuation", input: "!!!", expected: ""},
		{name: "only underscores", input: "___", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}

func TestPattern(t *testing.T) {
	re := regexp.MustCompile("(?i)" + Pattern("coffee-shop"))

	for _, s := range []string{"coffee-shop", "coffee-shop-2", "coffee-shop-15", "coffee-shop-", "Coffee-Shop-3"} {
		assert.True(t, re.MatchString(s), s)
	}

	for _, s := range []string{"coffee-shops", "the-coffee-shop", "coffee-shop-2-b", "coffee-shop-x", "coffee"} {
		assert.False(t, re.MatchString(s), s)
	}
}

func TestPattern_QuotesBase(t *testing.T) {
	re := regexp.MustCompile(Pattern("a.b"))

	assert.True(t, re.MatchString("a.b-2"))
	assert.False(t, re.MatchString("axb"))
}

// Simulates a sequence of creates: every new store sees the slugs of the
// stores created before it.
func TestNext_Sequence(t *testing.T) {
	names := []string{"Coffee Shop", "Coffee Shop!!", "coffee shop", "COFFEE SHOP?"}
	expected := []string{"coffee-shop", "coffee-shop-2", "coffee-shop-3", "coffee-shop-4"}

	var existing []string
	for i, name := range names {
		base := Make(name)
		re := regexp.MustCompile("(?i)" + Pattern(base))

		count := 0
		for _, s := range existing {
			if re.MatchString(s) {
				count++
			}
		}

		got := Next(base, count)
		assert.Equal(t, expected[i], got)
		existing = append(existing, got)
	}
}

func TestNext_CountBased(t *testing.T) {
	// coffee-shop-2 was deleted, two matches remain: the counter yields -3
	// even though -3 already exists.
	assert.Equal(t, "coffee-shop-3", Next("coffee-shop", 2))
	assert.Equal(t, "coffee-shop", Next("coffee-shop", 0))
	assert.Equal(t, "coffee-shop-7", WithSuffix("coffee-shop", 7))
}
