package player

import (
	"fmt"
	"strings"
)

// Status is a player's matchday availability.
type Status string

const (
	StatusAvailable Status = "available"
	StatusAbsent    Status = "absent"
	StatusInjured   Status = "injured"
	StatusSuspended Status = "suspended"
)

const DefaultStatus = StatusAvailable

// Player is a roster member. Rating and Age stay nil until set.
type Player struct {
	ID                string
	Name              string
	Number            int
	PreferredPosition string
	Status            Status
	Age               *int
	Notes             string
	PhotoURL          string
	EntryOrder        int64
	Rating            *float64
}

// Insert carries the caller-supplied fields for a new player. Zero
// EntryOrder means "assign at creation time".
type Insert struct {
	Name              string
	Number            int
	PreferredPosition string
	Status            Status
	Age               *int
	Notes             string
	PhotoURL          string
	EntryOrder        int64
	Rating            *float64
}

// Update carries a partial edit; nil fields are left untouched.
type Update struct {
	Name              *string
	Number            *int
	PreferredPosition *string
	Status            *Status
	Age               *int
	Notes             *string
	PhotoURL          *string
	EntryOrder        *int64
	Rating            *float64
}

func (in Insert) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(in.PreferredPosition) == "" {
		return fmt.Errorf("player preferred position is required")
	}

	return nil
}
