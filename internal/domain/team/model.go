package team

// Team supplies shared match-level context: the chosen formation plus
// the captain and man-of-the-match designations. CaptainID and MotmID
// are weak references; they may point at deleted players and readers
// must resolve them tolerantly.
type Team struct {
	ID        string
	Name      string
	Coach     string
	Formation string
	CaptainID string
	MotmID    string
	LogoURL   string
}

// Insert carries the caller-supplied fields for a new team. Empty
// Formation means "use the default".
type Insert struct {
	Name      string
	Coach     string
	Formation string
	CaptainID string
	MotmID    string
	LogoURL   string
}

// Update carries a partial edit; nil fields are left untouched.
type Update struct {
	Name      *string
	Coach     *string
	Formation *string
	CaptainID *string
	MotmID    *string
	LogoURL   *string
}
