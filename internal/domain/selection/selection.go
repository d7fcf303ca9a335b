package selection

import (
	"strings"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/domain/team"
)

// Unassigned is the sentinel a caller passes to clear a slot.
const Unassigned = "none"

// Assignment maps slot code to player id for one in-progress lineup.
// It is deliberately unconstrained: the same player id may appear under
// more than one slot, and ids are not checked against the roster. The
// presentation layer keeps duplicates out of selection candidate lists;
// the read operations below tolerate whatever ends up in the map.
type Assignment map[string]string

// Apply returns a copy of a with slotCode set to playerID. Passing
// Unassigned or an empty id removes the slot's entry. The previous
// occupant of the slot is overwritten unconditionally, and playerID is
// not cleared from any other slot it may already hold.
func Apply(a Assignment, slotCode, playerID string) Assignment {
	out := a.Clone()
	if playerID == "" || playerID == Unassigned {
		delete(out, slotCode)
		return out
	}

	out[slotCode] = playerID
	return out
}

func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for slot, id := range a {
		out[slot] = id
	}
	return out
}

// Starters counts the slots holding a non-empty player id. Clients that
// clear slots by writing "" instead of deleting the key are counted
// correctly either way.
func (a Assignment) Starters() int {
	n := 0
	for _, id := range a {
		if id != "" {
			n++
		}
	}
	return n
}

// AssignedIDs returns the set of player ids present in the assignment.
// A double-booked player appears once.
func (a Assignment) AssignedIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(a))
	for _, id := range a {
		if id != "" {
			out[id] = struct{}{}
		}
	}
	return out
}

// PlayerAt resolves the player occupying slotCode against the roster.
// It returns false both for an unassigned slot and for a stale id that
// no longer resolves to a roster member.
func PlayerAt(a Assignment, roster []player.Player, slotCode string) (player.Player, bool) {
	id, ok := a[slotCode]
	if !ok || id == "" {
		return player.Player{}, false
	}

	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}

	return player.Player{}, false
}

// UnassignedAvailable returns the available players not yet holding any
// slot, in roster order. This is the pool offered for empty slots.
func UnassignedAvailable(a Assignment, roster []player.Player) []player.Player {
	assigned := a.AssignedIDs()

	out := make([]player.Player, 0, len(roster))
	for _, p := range roster {
		if p.Status != player.StatusAvailable {
			continue
		}
		if _, taken := assigned[p.ID]; taken {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Stats summarizes a roster against an assignment. Bench is simply
// available minus starters and goes negative when more players hold
// slots than are marked available; it is intentionally not clamped.
type Stats struct {
	Starters int
	Bench    int
	Absent   int
}

func ComputeStats(a Assignment, roster []player.Player) Stats {
	available := 0
	absent := 0
	for _, p := range roster {
		switch p.Status {
		case player.StatusAvailable:
			available++
		case player.StatusAbsent:
			absent++
		}
	}

	starters := a.Starters()
	return Stats{
		Starters: starters,
		Bench:    available - starters,
		Absent:   absent,
	}
}

func IsCaptain(t team.Team, p player.Player) bool {
	return t.CaptainID != "" && t.CaptainID == p.ID
}

func IsMotm(t team.Team, p player.Player) bool {
	return t.MotmID != "" && t.MotmID == p.ID
}

// ShareGroups categorizes the assigned players of a share view by the
// slot code they occupy, not by their preferred position. The four
// filters test slot-code substrings independently, so a single player
// can land in more than one group (an LWB occupant matches both the
// defender and attacker filters). This mirrors the interactive share
// page and must stay separate from the roster hierarchy categorization.
type ShareGroups struct {
	Goalkeepers []player.Player
	Defenders   []player.Player
	Midfielders []player.Player
	Attackers   []player.Player
}

// AssignedPlayers returns roster members holding any slot, in roster order.
func AssignedPlayers(a Assignment, roster []player.Player) []player.Player {
	assigned := a.AssignedIDs()

	out := make([]player.Player, 0, len(assigned))
	for _, p := range roster {
		if _, ok := assigned[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func GroupForShare(a Assignment, formationSlots []string, roster []player.Player) ShareGroups {
	var groups ShareGroups
	for _, p := range AssignedPlayers(a, roster) {
		if occupiesSlot(a, formationSlots, p.ID, isGoalkeeperSlot) {
			groups.Goalkeepers = append(groups.Goalkeepers, p)
		}
		if occupiesSlot(a, formationSlots, p.ID, isDefenderSlot) {
			groups.Defenders = append(groups.Defenders, p)
		}
		if occupiesSlot(a, formationSlots, p.ID, isMidfielderSlot) {
			groups.Midfielders = append(groups.Midfielders, p)
		}
		if occupiesSlot(a, formationSlots, p.ID, isAttackerSlot) {
			groups.Attackers = append(groups.Attackers, p)
		}
	}
	return groups
}

func occupiesSlot(a Assignment, formationSlots []string, playerID string, match func(string) bool) bool {
	for _, slot := range formationSlots {
		if a[slot] == playerID && match(slot) {
			return true
		}
	}
	return false
}

func isGoalkeeperSlot(code string) bool {
	return strings.Contains(code, "GK")
}

func isDefenderSlot(code string) bool {
	return strings.Contains(code, "B") || strings.Contains(code, "CB")
}

func isMidfielderSlot(code string) bool {
	return strings.Contains(code, "M") || strings.Contains(code, "DM") || strings.Contains(code, "AM")
}

func isAttackerSlot(code string) bool {
	return strings.Contains(code, "W") || strings.Contains(code, "F") || strings.Contains(code, "ST")
}
