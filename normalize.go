package tzcity

import "strings"

// Normalizer produces display forms of time-zone keys and plain place names.
type Normalizer struct {
	caps *Capitalizer
	keys KeySet
}

// NewNormalizer returns a Normalizer that treats strings in keys as
// time-zone keys. keys may be nil, in which case every input is a plain name.
func NewNormalizer(caps *Capitalizer, keys KeySet) *Normalizer {
	return &Normalizer{caps: caps, keys: keys}
}

// Normalize capitalizes s. If s (trimmed, lowercased) is a known time-zone
// key the result keeps its path structure, e.g. "africa/dar_es_salaam" ->
// "Africa/Dar_es_Salaam"; otherwise s is capitalized as a plain name.
func (n *Normalizer) Normalize(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	known := n.keys != nil && n.keys.Has(s)
	return n.FormatDisplayName(s, known)
}

// FormatDisplayName capitalizes key as a time-zone path when known is true
// and as a plain name otherwise.
func (n *Normalizer) FormatDisplayName(key string, known bool) (string, error) {
	if !known {
		return n.caps.Name(key)
	}

	segs := strings.Split(strings.ToLower(strings.TrimSpace(key)), "/")
	if len(segs) < 2 || len(segs) > 3 {
		return "", &PatternError{Word: key, Reason: "time-zone key must have 2 or 3 segments"}
	}
	for _, s := range segs {
		if s == "" {
			return "", &PatternError{Word: key, Reason: "time-zone key has an empty segment"}
		}
	}

	last := len(segs) - 1
	for i := 0; i < last; i++ {
		segs[i] = titleSegment(segs[i])
	}
	city, err := n.caps.Name(strings.ReplaceAll(segs[last], "_", " "))
	if err != nil {
		return "", err
	}
	if city == "" {
		return "", &PatternError{Word: key, Reason: "time-zone key has an empty city"}
	}
	segs[last] = strings.ReplaceAll(city, " ", "_")
	return strings.Join(segs, "/"), nil
}

// titleSegment title-cases a continent or country segment without applying
// any word rules: "north_dakota" -> "North_Dakota".
func titleSegment(s string) string {
	return strings.ReplaceAll(titleCase(strings.ReplaceAll(s, "_", " ")), " ", "_")
}
