package network

import "fmt"

// Score is a mean satisfaction score with its sample count. N == 0
// means the filtered subset was empty or every value was missing; such
// scores render as "N/A" and never as a zero.
type Score struct {
	Mean float64 `json:"mean"`
	N    int     `json:"n"`
}

// Valid reports whether the score was computed from at least one value
func (s Score) Valid() bool {
	return s.N > 0
}

// String renders "7.9/10" or "N/A"
func (s Score) String() string {
	if !s.Valid() {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/10", s.Mean)
}

// Profile holds the aggregated statistics for one network under the
// active filter set. Recomputed on every filter change, never stored.
type Profile struct {
	Network       Network `json:"network"`
	Users         int     `json:"users"`
	Overall       Score   `json:"overall"`
	Service       Score   `json:"service"`
	Communication Score   `json:"communication"`
	Pricing       Score   `json:"pricing"`

	// Modes of the free-text fields. "N/A" when no data.
	TopStrength     string `json:"top_strength"`      // strongest area (multi-select tally)
	TopWeakness     string `json:"top_weakness"`      // most disliked feature (literal mode)
	TopDesire       string `json:"top_desire"`        // most requested service (multi-select tally)
	TopChoiceFactor string `json:"top_choice_factor"` // why users chose it (multi-select tally)
}

// Recommendation pairs a recommended network with its reason and the
// profile snapshot it was based on. Produced per interaction.
type Recommendation struct {
	Network Network  `json:"network"`
	Reason  string   `json:"reason"`
	Profile Profile  `json:"profile"`
	Matched Priority `json:"-"`
}
