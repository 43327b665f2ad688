package tzcity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalizer title-cases place names according to a Rules table.
// It is immutable once built and safe for concurrent use.
type Capitalizer struct {
	lower    map[string]struct{}
	upper    map[string]struct{}
	infixes  map[string]struct{}
	markers  []string // "-au-", "-de-", ...
	prefixes []prefixRule
}

// NewCapitalizer validates r and compiles it.
func NewCapitalizer(r Rules) (*Capitalizer, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	c := &Capitalizer{
		lower:    toSet(r.LowerWords),
		upper:    toSet(r.UpperWords),
		infixes:  toSet(r.HyphenInfixes),
		prefixes: r.sortedPrefixes(),
	}
	for _, w := range r.HyphenInfixes {
		c.markers = append(c.markers, "-"+w+"-")
	}
	return c, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Name capitalizes every whitespace-separated word of name and joins the
// results with single spaces. The output has as many words as the input.
func (c *Capitalizer) Name(name string) (string, error) {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		cw, err := c.Word(w)
		if err != nil {
			return "", err
		}
		words[i] = cw
	}
	return strings.Join(words, " "), nil
}

// Word capitalizes a single word. The first matching rule wins:
// lower word, upper word, hyphen infix, prefix, then plain title case.
func (c *Capitalizer) Word(word string) (string, error) {
	word = strings.ToLower(word)
	if word == "" {
		return "", &PatternError{Word: word, Reason: "empty word"}
	}
	if _, ok := c.lower[word]; ok {
		return word, nil
	}
	if _, ok := c.upper[word]; ok {
		return strings.ToUpper(word), nil
	}
	if c.hasInfix(word) {
		return c.hyphenated(word)
	}
	for _, p := range c.prefixes {
		if !strings.HasPrefix(word, p.prefix) {
			continue
		}
		rest := word[len(p.prefix):]
		if rest == "" {
			return "", &PatternError{Word: word, Reason: "nothing follows the prefix"}
		}
		return p.display + titleCase(rest), nil
	}
	return titleCase(word), nil
}

func (c *Capitalizer) hasInfix(word string) bool {
	for _, m := range c.markers {
		if strings.Contains(word, m) {
			return true
		}
	}
	return false
}

// hyphenated handles pre-infix-post words such as "port-au-prince".
func (c *Capitalizer) hyphenated(word string) (string, error) {
	parts := strings.Fields(strings.ReplaceAll(word, "-", " "))
	if len(parts) != 3 {
		return "", &PatternError{Word: word, Reason: "hyphenated name is not of the form pre-infix-post"}
	}
	if _, ok := c.infixes[parts[1]]; !ok {
		return "", &PatternError{Word: word, Reason: fmt.Sprintf("%q is not a hyphen infix", parts[1])}
	}
	return titleCase(parts[0]) + "-" + parts[1] + "-" + titleCase(parts[2]), nil
}

// titleCase uppercases the first letter of each word part and lowercases
// the rest. Hyphens separate word parts, apostrophes between letters do not:
// "ust-nera" -> "Ust-Nera", "sana'a" -> "Sana'a".
//
// A cases.Caser carries state, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
