// Package board drives the company request board: one aggregation per
// session and one offer flow at a time.
//
// Offer flow state graph:
//
//	IDLE ──► DETAIL_ENTRY ──► SUBMITTING ──► IDLE
//	             │                            ▲
//	             └──────────(cancel)──────────┘
//
// Load state graph (terminal on failure, no retry):
//
//	UNINITIALIZED ──► LOADING ──► READY
//	                     │
//	                     └──────► FAILED
package board

// Phase is the offer-flow state. The selected student travels with the
// phase (see Board.selected), so DETAIL_ENTRY and SUBMITTING are always
// bound to a concrete target.
type Phase string

const (
	PhaseIdle        Phase = "IDLE"
	PhaseDetailEntry Phase = "DETAIL_ENTRY"
	PhaseSubmitting  Phase = "SUBMITTING"
)

// LoadState tracks the page-load transition that drives aggregation.
type LoadState string

const (
	LoadUninitialized LoadState = "UNINITIALIZED"
	LoadLoading       LoadState = "LOADING"
	LoadReady         LoadState = "READY"
	LoadFailed        LoadState = "FAILED"
)

var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:        {PhaseDetailEntry},
	PhaseDetailEntry: {PhaseSubmitting, PhaseIdle},
	PhaseSubmitting:  {PhaseIdle},
}

// phaseAllowed reports whether the offer flow may move from → to.
func phaseAllowed(from, to Phase) bool {
	for _, p := range phaseTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
