package relevance

import "testing"

func TestRelevant(t *testing.T) {
	filter := NewFilter(
		[]string{"beverage", "juice", "energy drink"},
		[]string{"wine", "cryptocurrency"},
	)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"inclusion hit", "new beverage brand enters market", true},
		{"phrase inclusion", "Energy Drink sales soar", true},
		{"no inclusion term", "local bakery opens second shop", false},
		{"exclusion beats inclusion", "australian wine exports rise as juice demand falls", false},
		{"exclusion alone", "cryptocurrency exchange collapses", false},
		{"substring containment", "juicery startup raises funds", true},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Relevant(tt.text); got != tt.want {
				t.Errorf("Relevant(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRelevantIsCaseInsensitive(t *testing.T) {
	filter := NewFilter([]string{"Beverage"}, []string{"WINE"})

	if !filter.Relevant("BEVERAGE giant reports growth") {
		t.Error("uppercase text should match lowercased inclusion keyword")
	}
	if filter.Relevant("beverage and wine pairing guide") {
		t.Error("exclusion keyword should reject regardless of casing")
	}
}

func TestCountMatches(t *testing.T) {
	keywords := []string{"germany", "german", "dach"}

	if got := CountMatches("german retailers in germany expand", keywords); got != 2 {
		t.Errorf("CountMatches = %d, want 2", got)
	}
	if got := CountMatches("french market update", keywords); got != 0 {
		t.Errorf("CountMatches = %d, want 0", got)
	}
}
