package model

// Account carries display-only scalars rendered verbatim.
type Account struct {
	ID        string
	Email     string
	Credits   int
	ExpiresAt string
}
