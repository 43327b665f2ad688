package tzcity

import (
	"fmt"
	"sort"
	"strings"
)

// Rules is the word-classification table used to capitalize place names.
// All words and prefixes are lowercase; matching is done on the lowercased
// input.
type Rules struct {
	LowerWords    []string          // Always lowercase: "de" in "Rio de Janeiro"
	UpperWords    []string          // Always uppercase: "uae" -> "UAE"
	HyphenInfixes []string          // Lowercase middle of X-infix-Y: "Port-au-Prince"
	Prefixes      map[string]string // Literal prefix -> display form: "mc" -> "Mc"
}

// DefaultRules returns a fresh copy of the built-in rule table.
func DefaultRules() Rules {
	return Rules{
		LowerWords:    []string{"la", "de", "da", "and", "of", "the", "es"},
		UpperWords:    []string{"uk", "uae", "sgssi", "dc"},
		HyphenInfixes: []string{"au", "de"},
		Prefixes: map[string]string{
			"mc": "Mc",
			"d'": "d'",
			"n'": "N'",
		},
	}
}

// Validate reports the first structural problem in the table.
func (r Rules) Validate() error {
	lower := make(map[string]bool, len(r.LowerWords))
	for _, w := range r.LowerWords {
		if err := checkRuleWord("lower word", w); err != nil {
			return err
		}
		lower[w] = true
	}
	for _, w := range r.UpperWords {
		if err := checkRuleWord("upper word", w); err != nil {
			return err
		}
		if lower[w] {
			return fmt.Errorf("%q is listed as both a lower and an upper word", w)
		}
	}
	for _, w := range r.HyphenInfixes {
		if err := checkRuleWord("hyphen infix", w); err != nil {
			return err
		}
		if strings.Contains(w, "-") {
			return fmt.Errorf("hyphen infix %q must not contain a hyphen", w)
		}
	}
	for p, display := range r.Prefixes {
		if err := checkRuleWord("prefix", p); err != nil {
			return err
		}
		if display == "" {
			return fmt.Errorf("prefix %q has an empty display form", p)
		}
	}
	return nil
}

func checkRuleWord(kind, w string) error {
	switch {
	case w == "":
		return fmt.Errorf("empty %s", kind)
	case strings.ContainsAny(w, " \t\r\n"):
		return fmt.Errorf("%s %q contains whitespace", kind, w)
	case w != strings.ToLower(w):
		return fmt.Errorf("%s %q is not lowercase", kind, w)
	}
	return nil
}

// prefixRule is one compiled entry of Rules.Prefixes.
type prefixRule struct {
	prefix  string
	display string
}

// sortedPrefixes returns the prefix rules longest first, so that a prefix
// which is itself a prefix of another never shadows it. Equal lengths are
// ordered alphabetically for deterministic output.
func (r Rules) sortedPrefixes() []prefixRule {
	out := make([]prefixRule, 0, len(r.Prefixes))
	for p, d := range r.Prefixes {
		out = append(out, prefixRule{prefix: p, display: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].prefix) != len(out[j].prefix) {
			return len(out[i].prefix) > len(out[j].prefix)
		}
		return out[i].prefix < out[j].prefix
	})
	return out
}
