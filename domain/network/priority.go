package network

import "strings"

// Priority is the user's stated decision criterion from the quiz. The
// quiz labels carry emoji prefixes ("💰 Best Price"), so parsing is by
// substring containment on the literal keys rather than equality; all
// downstream logic works on the enum only.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityBestPrice
	PriorityFastestInternet
	PriorityOverallQuality
	PriorityBestService
)

// ParsePriority maps a quiz label to a Priority. The three literal
// keys are checked in order, first match wins; anything else falls
// through to PriorityBestService, the default row of the decision
// table.
func ParsePriority(label string) Priority {
	switch {
	case strings.Contains(label, "Best Price"):
		return PriorityBestPrice
	case strings.Contains(label, "Fastest Internet"):
		return PriorityFastestInternet
	case strings.Contains(label, "Overall Quality"):
		return PriorityOverallQuality
	}
	return PriorityBestService
}

// String returns a stable label for the priority
func (p Priority) String() string {
	switch p {
	case PriorityBestPrice:
		return "Best Price"
	case PriorityFastestInternet:
		return "Fastest Internet"
	case PriorityOverallQuality:
		return "Overall Quality"
	case PriorityBestService:
		return "Best Service"
	}
	return "Unknown"
}
