package tzcity

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed data/timezones.yaml
var timezonesYAML []byte

// Zone is one entry of the time-zone table: a canonical key such as
// "america/port-au-prince" and the informal names that resolve to it.
type Zone struct {
	Key     string   `yaml:"zone"`
	Aliases []string `yaml:"aliases"`
}

// KeySet reports whether a string is a known time-zone key.
type KeySet interface {
	Has(key string) bool
}

// Table is the ordered, validated time-zone table. It is read-only after
// construction and safe for concurrent use.
type Table struct {
	zones []Zone
	keys  map[string]int    // key -> position in zones
	index map[string]string // resolvable name -> key
}

// DefaultTable returns the table embedded in the package, parsed once.
var DefaultTable = sync.OnceValues(func() (*Table, error) {
	return LoadTable(bytes.NewReader(timezonesYAML))
})

// LoadTable parses a YAML list of zones and validates it.
func LoadTable(r io.Reader) (*Table, error) {
	var zones []Zone
	if err := yaml.NewDecoder(r).Decode(&zones); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("time-zone table is empty")
		}
		return nil, fmt.Errorf("decoding time-zone table: %w", err)
	}
	return NewTable(zones)
}

// LoadTableFile reads a YAML time-zone table from path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// NewTable validates zones and builds the lookup index. Zone order is the
// lookup order. Any name that would resolve to two different keys is an
// error, so lookups never depend on that order in practice.
func NewTable(zones []Zone) (*Table, error) {
	if len(zones) == 0 {
		return nil, errors.New("time-zone table is empty")
	}
	t := &Table{
		zones: make([]Zone, 0, len(zones)),
		keys:  make(map[string]int, len(zones)),
		index: make(map[string]string, len(zones)*2),
	}
	for _, z := range zones {
		if err := checkKey(z.Key); err != nil {
			return nil, err
		}
		if _, dup := t.keys[z.Key]; dup {
			return nil, fmt.Errorf("duplicate time-zone key %q", z.Key)
		}
		t.keys[z.Key] = len(t.zones)
		t.zones = append(t.zones, Zone{Key: z.Key, Aliases: append([]string(nil), z.Aliases...)})
	}

	// Index keys first, then city segments, then aliases, so a collision is
	// reported against the more canonical name.
	for _, z := range t.zones {
		if err := t.addName(z.Key, z.Key); err != nil {
			return nil, err
		}
	}
	for _, z := range t.zones {
		if err := t.addName(citySegment(z.Key), z.Key); err != nil {
			return nil, err
		}
	}
	for _, z := range t.zones {
		for _, a := range z.Aliases {
			name := canonicalName(a)
			if name == "" {
				return nil, fmt.Errorf("zone %q has an empty alias", z.Key)
			}
			if err := t.addName(name, z.Key); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func (t *Table) addName(name, key string) error {
	if prev, ok := t.index[name]; ok && prev != key {
		return fmt.Errorf("name %q resolves to both %q and %q", name, prev, key)
	}
	t.index[name] = key
	return nil
}

// checkKey accepts "continent/city" and "continent/country/city" keys made of
// non-empty lowercase segments without whitespace.
func checkKey(key string) error {
	if key == "" {
		return errors.New("empty time-zone key")
	}
	if key != strings.ToLower(key) || strings.ContainsAny(key, " \t\r\n") {
		return fmt.Errorf("time-zone key %q must be lowercase without whitespace", key)
	}
	segs := strings.Split(key, "/")
	if len(segs) < 2 || len(segs) > 3 {
		return fmt.Errorf("time-zone key %q must have 2 or 3 segments", key)
	}
	for _, s := range segs {
		if s == "" {
			return fmt.Errorf("time-zone key %q has an empty segment", key)
		}
	}
	return nil
}

// citySegment returns the last segment of key with underscores as spaces.
func citySegment(key string) string {
	return strings.ReplaceAll(key[strings.LastIndex(key, "/")+1:], "_", " ")
}

// canonicalName trims, lowercases, collapses inner whitespace and strips
// diacritics, so "  São   Tomé " and "sao tome" compare equal.
func canonicalName(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		return s
	}
	return folded
}

// Has reports whether key is a canonical time-zone key.
func (t *Table) Has(key string) bool {
	_, ok := t.keys[key]
	return ok
}

// Lookup returns the key that name resolves to. name must already be
// canonical (see canonicalName).
func (t *Table) Lookup(name string) (string, bool) {
	key, ok := t.index[name]
	return key, ok
}

// Len returns the number of zones.
func (t *Table) Len() int { return len(t.zones) }

// Keys returns all keys in table order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.zones))
	for i, z := range t.zones {
		out[i] = z.Key
	}
	return out
}

// Aliases returns the aliases listed for key, or nil if key is unknown.
func (t *Table) Aliases(key string) []string {
	i, ok := t.keys[key]
	if !ok {
		return nil
	}
	return append([]string(nil), t.zones[i].Aliases...)
}
