package tzcity

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any name built from rule words, special forms and random lowercase
// words, capitalization is stable, keeps rule words in their forced case and
// preserves the number of words.

// genPlainWord generates a random lowercase word of 3-10 letters.
func genPlainWord() gopter.Gen {
	return gen.IntRange(3, 10).FlatMap(func(length interface{}) gopter.Gen {
		return gen.SliceOfN(length.(int), gen.AlphaLowerChar())
	}, reflect.TypeOf([]rune{})).Map(func(chars []rune) string {
		return string(chars)
	})
}

// genRuleWord generates a word covered by one of the default rules.
func genRuleWord() gopter.Gen {
	return gen.OneConstOf(
		"la", "de", "da", "and", "of", "the", "es",
		"uk", "uae", "sgssi", "dc",
		"port-au-prince", "fort-de-france",
		"mcmurdo", "d'urville", "n'djamena",
		"ust-nera", "sana'a", "guinea-bissau",
	)
}

// genName generates 1-6 words joined by random runs of whitespace.
func genName() gopter.Gen {
	word := gen.OneGenOf(genPlainWord(), genRuleWord())
	sep := gen.OneConstOf(" ", "  ", "\t", " \t ")
	return gen.IntRange(1, 6).FlatMap(func(n interface{}) gopter.Gen {
		return gopter.CombineGens(
			gen.SliceOfN(n.(int), word),
			gen.SliceOfN(n.(int), sep),
		)
	}, reflect.TypeOf([]interface{}{})).Map(func(vals []interface{}) string {
		words := vals[0].([]string)
		seps := vals[1].([]string)
		var b strings.Builder
		b.WriteString(seps[0])
		for i, w := range words {
			if i > 0 {
				b.WriteString(seps[i])
			}
			b.WriteString(w)
		}
		return b.String()
	})
}

func TestCapitalizeProperties(t *testing.T) {
	c := mustCapitalizer(t, DefaultRules())
	rules := DefaultRules()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("capitalizing twice equals capitalizing once", prop.ForAll(
		func(name string) bool {
			once, err := c.Name(name)
			if err != nil {
				return false
			}
			twice, err := c.Name(once)
			return err == nil && twice == once
		},
		genName(),
	))

	properties.Property("word count is preserved", prop.ForAll(
		func(name string) bool {
			out, err := c.Name(name)
			if err != nil {
				return false
			}
			return len(strings.Split(out, " ")) == len(strings.Fields(name))
		},
		genName(),
	))

	properties.Property("lower words stay lowercase in any position", prop.ForAll(
		func(name string, idx int) bool {
			words := strings.Fields(name)
			lw := rules.LowerWords[idx%len(rules.LowerWords)]
			pos := idx % (len(words) + 1)
			words = append(words[:pos], append([]string{strings.ToUpper(lw)}, words[pos:]...)...)
			out, err := c.Name(strings.Join(words, " "))
			if err != nil {
				return false
			}
			return strings.Fields(out)[pos] == lw
		},
		genName(),
		gen.IntRange(0, 100),
	))

	properties.Property("upper words are uppercased in any position", prop.ForAll(
		func(name string, idx int) bool {
			words := strings.Fields(name)
			uw := rules.UpperWords[idx%len(rules.UpperWords)]
			pos := idx % (len(words) + 1)
			words = append(words[:pos], append([]string{uw}, words[pos:]...)...)
			out, err := c.Name(strings.Join(words, " "))
			if err != nil {
				return false
			}
			return strings.Fields(out)[pos] == strings.ToUpper(uw)
		},
		genName(),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestTimeZoneKeyProperties(t *testing.T) {
	tz, err := New()
	if err != nil {
		t.Fatal(err)
	}
	keys := tz.Table().Keys()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("display form keeps the key's segments", prop.ForAll(
		func(i int) bool {
			key := keys[i]
			out, err := tz.Normalize(key)
			if err != nil {
				return false
			}
			segs := strings.Split(out, "/")
			if len(segs) != len(strings.Split(key, "/")) {
				return false
			}
			for _, s := range segs {
				if s == "" {
					return false
				}
			}
			return strings.EqualFold(out, key)
		},
		gen.IntRange(0, len(keys)-1),
	))

	properties.Property("display form normalizes to itself", prop.ForAll(
		func(i int) bool {
			out, err := tz.Normalize(keys[i])
			if err != nil {
				return false
			}
			again, err := tz.Normalize(out)
			return err == nil && again == out
		},
		gen.IntRange(0, len(keys)-1),
	))

	properties.Property("city segment resolves to its key", prop.ForAll(
		func(i int) bool {
			got, err := tz.Resolve(citySegment(keys[i]))
			return err == nil && got == keys[i]
		},
		gen.IntRange(0, len(keys)-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
