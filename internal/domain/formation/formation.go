package formation

import (
	crerr "github.com/cockroachdb/errors"
)

// ErrUnknownFormation marks a formation key outside the fixed catalog.
// The key space is closed, so hitting this in production means a caller
// bug rather than bad user input.
var ErrUnknownFormation = crerr.New("unknown formation")

const Default = "4-4-2"

// slots lists the eleven ordered slot codes of each supported formation.
var slots = map[string][]string{
	"4-4-2":   {"GK", "LB", "CB1", "CB2", "RB", "LM", "CM1", "CM2", "RM", "LF", "RF"},
	"4-3-3":   {"GK", "LB", "CB1", "CB2", "RB", "CDM", "CM1", "CM2", "LW", "ST", "RW"},
	"3-5-2":   {"GK", "CB1", "CB2", "CB3", "LWB", "CM1", "CM2", "CM3", "RWB", "ST1", "ST2"},
	"4-5-1":   {"GK", "LB", "CB1", "CB2", "RB", "LM", "CM1", "CM2", "CM3", "RM", "ST"},
	"5-3-2":   {"GK", "CB1", "CB2", "CB3", "LWB", "RWB", "CM1", "CM2", "CM3", "ST1", "ST2"},
	"4-2-1-3": {"GK", "LB", "CB1", "CB2", "RB", "CDM1", "CDM2", "CAM", "LW", "ST", "RW"},
}

// order fixes a stable listing sequence for the catalog.
var order = []string{"4-4-2", "4-3-3", "3-5-2", "4-5-1", "5-3-2", "4-2-1-3"}

var displayNames = map[string]string{
	"GK":   "POR",
	"LB":   "TS",
	"CB":   "DC",
	"CB1":  "DC",
	"CB2":  "DC",
	"CB3":  "DC",
	"RB":   "TD",
	"LWB":  "TS",
	"RWB":  "TD",
	"LM":   "CDS",
	"CM":   "COC",
	"CM1":  "COC",
	"CM2":  "COC",
	"CM3":  "COC",
	"CDM":  "CDS",
	"CDM1": "CDS",
	"CDM2": "CDS",
	"CAM":  "COC",
	"RM":   "CDS",
	"LW":   "AS",
	"RW":   "AD",
	"LF":   "ATT",
	"RF":   "ATT",
	"ST":   "ATT",
	"ST1":  "ATT",
	"ST2":  "ATT",
}

// Slots returns the ordered slot codes for a formation key.
func Slots(key string) ([]string, error) {
	codes, ok := slots[key]
	if !ok {
		return nil, crerr.Wrapf(ErrUnknownFormation, "formation=%s", key)
	}

	out := make([]string, len(codes))
	copy(out, codes)
	return out, nil
}

// Known reports whether key names one of the supported formations.
func Known(key string) bool {
	_, ok := slots[key]
	return ok
}

// Keys returns the supported formation keys in catalog order.
func Keys() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// DisplayName maps a slot code to its short pitch abbreviation. Codes
// without an entry echo back unchanged.
func DisplayName(slotCode string) string {
	if name, ok := displayNames[slotCode]; ok {
		return name
	}
	return slotCode
}
