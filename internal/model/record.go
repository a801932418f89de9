package model

// RawRecord is one loosely-typed row from the studio backend. The same
// logical field can appear under several historical names.
type RawRecord map[string]any
