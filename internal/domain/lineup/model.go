package lineup

// Lineup is a named, saved snapshot of a formation plus its slot
// assignments, separate from the live editor state. Positions maps
// slot code to player id; absent keys mean unassigned. Assigned ids
// are weak references and may go stale when players are deleted.
type Lineup struct {
	ID        string
	TeamID    string
	Name      string
	Formation string
	Positions map[string]string
}

// Insert carries the caller-supplied fields for a new saved lineup.
type Insert struct {
	TeamID    string
	Name      string
	Formation string
	Positions map[string]string
}

// Update carries a partial edit; nil fields are left untouched.
type Update struct {
	TeamID    *string
	Name      *string
	Formation *string
	Positions map[string]string
}
