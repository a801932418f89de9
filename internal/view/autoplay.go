package view

import "sync"

// PlayThreshold is the minimum visibility ratio for playback.
const PlayThreshold = 0.35

// Arbiter enforces single-video playback: of all mounted videos above
// the threshold, only the one with the highest ratio plays. Safe for
// concurrent use.
type Arbiter struct {
	mu         sync.Mutex
	mounted    map[string]bool
	candidates map[string]float64
	pageHidden bool
}

func NewArbiter() *Arbiter {
	return &Arbiter{
		mounted:    make(map[string]bool),
		candidates: make(map[string]float64),
	}
}

func (a *Arbiter) Mount(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mounted[id] = true
}

func (a *Arbiter) Unmount(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.mounted, id)
	delete(a.candidates, id)
}

// Report is a no-op for unmounted ids; below-threshold ratios drop the
// candidate.
func (a *Arbiter) Report(id string, ratio float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.mounted[id] {
		return
	}
	if ratio >= PlayThreshold {
		a.candidates[id] = ratio
	} else {
		delete(a.candidates, id)
	}
}

func (a *Arbiter) SetPageHidden(hidden bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pageHidden = hidden
}

// Playing returns the id that should currently play, or "".
func (a *Arbiter) Playing() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pageHidden {
		return ""
	}
	return selectBest(a.candidates)
}

// Ties go to the lexicographically smaller id so the choice is stable.
func selectBest(candidates map[string]float64) string {
	best := ""
	bestRatio := 0.0
	for id, ratio := range candidates {
		if ratio > bestRatio || (ratio == bestRatio && best != "" && id < best) {
			best = id
			bestRatio = ratio
		}
	}
	return best
}
