package view

import "minagallery/internal/model"

const (
	InitialWindow = 36
	RevealStep    = 24
)

// SyncWindow resets the reveal window only when the merged list size
// changes. Filter changes never alter the size, so they never reset it.
func SyncWindow(state *model.ViewState, total int) {
	if state.VisibleCount <= 0 || state.LastTotal != total {
		state.VisibleCount = InitialWindow
		state.LastTotal = total
	}
}

// GrowWindow extends the window; it only ever grows.
func GrowWindow(state *model.ViewState) {
	state.VisibleCount += RevealStep
}

func Window(entries []Entry, state model.ViewState) []Entry {
	if state.VisibleCount >= len(entries) {
		return entries
	}
	return entries[:state.VisibleCount]
}
