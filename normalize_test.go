package tzcity

import (
	"errors"
	"testing"
)

// keySet is a KeySet backed by a map.
type keySet map[string]bool

func (k keySet) Has(key string) bool { return k[key] }

func TestFormatDisplayNameKnownKey(t *testing.T) {
	n := NewNormalizer(mustCapitalizer(t, DefaultRules()), nil)

	tests := []struct {
		key  string
		want string
	}{
		{"europe/london", "Europe/London"},
		{"america/port-au-prince", "America/Port-au-Prince"},
		{"africa/dar_es_salaam", "Africa/Dar_es_Salaam"},
		{"atlantic/cape_verde", "Atlantic/Cape_Verde"},
		{"america/port_of_spain", "America/Port_of_Spain"},
		{"antarctica/mcmurdo", "Antarctica/McMurdo"},
		{"asia/ust-nera", "Asia/Ust-Nera"},
		{"africa/porto-novo", "Africa/Porto-Novo"},
		{"america/la_paz", "America/la_Paz"},
		{"america/argentina/buenos_aires", "America/Argentina/Buenos_Aires"},
		{"america/north_dakota/new_salem", "America/North_Dakota/New_Salem"},
		{"America/Indiana/Tell_City", "America/Indiana/Tell_City"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := n.FormatDisplayName(tt.key, true)
			if err != nil {
				t.Fatalf("FormatDisplayName(%q, true) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("FormatDisplayName(%q, true) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestFormatDisplayNameMalformedKey(t *testing.T) {
	n := NewNormalizer(mustCapitalizer(t, DefaultRules()), nil)

	for _, key := range []string{"utc", "a/b/c/d", "europe/", "/london", "europe/__", "europe/d'", "america/saint-jean-de-luz"} {
		t.Run(key, func(t *testing.T) {
			got, err := n.FormatDisplayName(key, true)
			if !errors.Is(err, ErrUnrecognizedPattern) {
				t.Errorf("FormatDisplayName(%q, true) = %q, %v, want ErrUnrecognizedPattern", key, got, err)
			}
		})
	}
}

func TestFormatDisplayNamePlain(t *testing.T) {
	n := NewNormalizer(mustCapitalizer(t, DefaultRules()), nil)

	got, err := n.FormatDisplayName("dar es salaam", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Dar es Salaam" {
		t.Errorf("FormatDisplayName = %q, want %q", got, "Dar es Salaam")
	}

	if _, err := n.FormatDisplayName("d'", false); !errors.Is(err, ErrUnrecognizedPattern) {
		t.Errorf("FormatDisplayName(d') error = %v, want ErrUnrecognizedPattern", err)
	}
}

func TestNormalizeUsesKeySet(t *testing.T) {
	n := NewNormalizer(mustCapitalizer(t, DefaultRules()), keySet{"x/rio_de_janeiro": true})

	tests := []struct {
		input string
		want  string
	}{
		{"x/rio_de_janeiro", "X/Rio_de_Janeiro"},
		{"  X/RIO_DE_JANEIRO ", "X/Rio_de_Janeiro"},
		{"rio de janeiro", "Rio de Janeiro"},
		{"RIO DE JANEIRO", "Rio de Janeiro"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := n.Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWithoutKeySet(t *testing.T) {
	n := NewNormalizer(mustCapitalizer(t, DefaultRules()), nil)

	got, err := n.Normalize("rio_de_janeiro")
	if err != nil {
		t.Fatal(err)
	}
	// Not a known key, so underscores are not word separators.
	if got == "Rio_de_Janeiro" {
		t.Errorf("Normalize(%q) = %q, want plain-name handling", "rio_de_janeiro", got)
	}
}

func TestTitleSegment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"america", "America"},
		{"ARGENTINA", "Argentina"},
		{"north_dakota", "North_Dakota"},
	}
	for _, tt := range tests {
		if got := titleSegment(tt.input); got != tt.want {
			t.Errorf("titleSegment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
