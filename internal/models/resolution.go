package models

// ResolutionState classifies the outcome of matching a station pattern
// against the catalog.
type ResolutionState int

const (
	// StationResolved means the pattern matched exactly one station name.
	StationResolved ResolutionState = iota
	// StationNotFound means the pattern matched nothing.
	StationNotFound
	// StationAmbiguous means the pattern matched more than one distinct
	// name. Callers that need a single station must treat this as terminal
	// for the command, never fall back to the first match.
	StationAmbiguous
)

// Resolution is the tagged result of station name resolution. Name is only
// meaningful when State is StationResolved; Candidates is only populated
// when State is StationAmbiguous.
type Resolution struct {
	State      ResolutionState
	Name       string
	Candidates []string
}

// ResolveNames classifies a distinct, already-sorted match list.
func ResolveNames(names []string) Resolution {
	switch len(names) {
	case 0:
		return Resolution{State: StationNotFound}
	case 1:
		return Resolution{State: StationResolved, Name: names[0]}
	default:
		return Resolution{State: StationAmbiguous, Candidates: names}
	}
}

// Resolved reports whether the pattern disambiguated to exactly one station.
func (r Resolution) Resolved() bool {
	return r.State == StationResolved
}
