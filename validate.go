package tzcity

import (
	"fmt"
	"io"
	"strings"
)

// minZoneCount is the smallest table Validate accepts for the embedded data.
const minZoneCount = 400

// validationCase is a query with its expected display form.
type validationCase struct {
	query string
	want  string
}

// knownFinds are resolved and formatted by Validate.
var knownFinds = []validationCase{
	{"lOnDon", "Europe/London"},
	{"port au prince", "America/Port-au-Prince"},
	{"africa/dar_es_salaam", "Africa/Dar_es_Salaam"},
	{"N'Djamena", "Africa/Ndjamena"},
	{"uk", "Europe/London"},
}

// knownNames are capitalized as plain names by Validate.
var knownNames = []validationCase{
	{"rio de janeiro", "Rio de Janeiro"},
	{"andorra la vella", "Andorra la Vella"},
	{"uae", "UAE"},
	{"cote d'ivoire", "Cote d'Ivoire"},
	{"n'djamena", "N'Djamena"},
	{"mcmurdo", "McMurdo"},
	{"port-au-prince", "Port-au-Prince"},
	{"fort-de-france", "Fort-de-France"},
}

// Validate runs functional checks against tz and its table, writing a line
// of progress per check to w. It is meant for the embedded data; custom
// tables with fewer than minZoneCount zones fail.
func (tz *TZCity) Validate(w io.Writer) error {
	if n := tz.table.Len(); n < minZoneCount {
		return fmt.Errorf("zone count too low: got %d, want >= %d", n, minZoneCount)
	}
	fmt.Fprintf(w, "      Zone count: %d (OK)\n", tz.table.Len())

	fmt.Fprintf(w, "      Find: ")
	for _, tc := range knownFinds {
		got, err := tz.Find(tc.query)
		if err != nil {
			return fmt.Errorf("find(%q): %w", tc.query, err)
		}
		if got != tc.want {
			return fmt.Errorf("find(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
	fmt.Fprintf(w, "%d queries OK\n", len(knownFinds))

	fmt.Fprintf(w, "      Capitalize: ")
	for _, tc := range knownNames {
		got, err := tz.Capitalize(tc.query)
		if err != nil {
			return fmt.Errorf("capitalize(%q): %w", tc.query, err)
		}
		if got != tc.want {
			return fmt.Errorf("capitalize(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
	fmt.Fprintf(w, "%d names OK\n", len(knownNames))

	fmt.Fprintf(w, "      Zones: ")
	for _, key := range tz.table.Keys() {
		if err := tz.checkZone(key); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%d keys OK\n", tz.table.Len())

	return nil
}

// checkZone verifies that key resolves to itself, that its display form has
// the same path shape and is stable, and that all its aliases resolve back
// to it and can be capitalized.
func (tz *TZCity) checkZone(key string) error {
	if got, err := tz.Resolve(key); err != nil || got != key {
		return fmt.Errorf("resolve(%q) = %q, %v", key, got, err)
	}
	display, err := tz.Normalize(key)
	if err != nil {
		return fmt.Errorf("normalize(%q): %w", key, err)
	}
	want := strings.Split(key, "/")
	segs := strings.Split(display, "/")
	if len(segs) != len(want) {
		return fmt.Errorf("normalize(%q) = %q: got %d segments, want %d", key, display, len(segs), len(want))
	}
	for _, s := range segs {
		if s == "" {
			return fmt.Errorf("normalize(%q) = %q: empty segment", key, display)
		}
	}
	if again, err := tz.Normalize(display); err != nil || again != display {
		return fmt.Errorf("normalize(%q) = %q, %v, want %q", display, again, err, display)
	}
	for _, a := range tz.table.Aliases(key) {
		if got, err := tz.Resolve(a); err != nil || got != key {
			return fmt.Errorf("resolve(%q) = %q, %v, want %q", a, got, err, key)
		}
		if _, err := tz.Capitalize(a); err != nil {
			return fmt.Errorf("capitalize(%q): %w", a, err)
		}
	}
	return nil
}
