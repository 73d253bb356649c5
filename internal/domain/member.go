package domain

// Member represents a household participant with a cumulative point balance.
// The name is the unique identifier within the ledger; the avatar is
// cosmetic only.
type Member struct {
	Name   string
	Points int
	Avatar string
}
