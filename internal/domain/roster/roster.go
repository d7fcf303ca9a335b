package roster

import (
	"sort"
	"strings"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/domain/selection"
	"github.com/matchday/lineup-manager/internal/domain/team"
)

// Category buckets a player's preferred position into a role family.
type Category string

const (
	CategoryGoalkeepers Category = "goalkeepers"
	CategoryDefenders   Category = "defenders"
	CategoryMidfielders Category = "midfielders"
	CategoryAttackers   Category = "attackers"
	CategoryOthers      Category = "others"
)

// Side splits a category by pitch side.
type Side string

const (
	SideLeft   Side = "left"
	SideCenter Side = "center"
	SideRight  Side = "right"
)

var goalkeeperPositions = map[string]struct{}{"GK": {}}

var defenderPositions = map[string]struct{}{
	"LB": {}, "CB": {}, "CB1": {}, "CB2": {}, "CB3": {}, "RB": {}, "LWB": {}, "RWB": {},
}

var midfielderPositions = map[string]struct{}{
	"LM": {}, "CM": {}, "CM1": {}, "CM2": {}, "CM3": {},
	"CDM": {}, "CDM1": {}, "CDM2": {}, "CAM": {}, "RM": {},
}

var attackerPositions = map[string]struct{}{
	"LW": {}, "RW": {}, "LF": {}, "RF": {}, "ST": {}, "ST1": {}, "ST2": {},
}

// Categorize buckets a player by preferred position. The side split is
// a substring heuristic carried over from the interactive editor: any
// "L" in the code reads as left, any "R" as right, left winning when a
// code could match both. Do not generalize it to future slot codes.
func Categorize(p player.Player) (Category, Side) {
	pos := p.PreferredPosition

	if _, ok := goalkeeperPositions[pos]; ok {
		return CategoryGoalkeepers, SideCenter
	}
	if _, ok := defenderPositions[pos]; ok {
		return CategoryDefenders, sideOf(pos)
	}
	if _, ok := midfielderPositions[pos]; ok {
		return CategoryMidfielders, sideOf(pos)
	}
	if _, ok := attackerPositions[pos]; ok {
		return CategoryAttackers, sideOf(pos)
	}

	return CategoryOthers, SideCenter
}

func sideOf(pos string) Side {
	switch {
	case strings.Contains(pos, "L"):
		return SideLeft
	case strings.Contains(pos, "R"):
		return SideRight
	default:
		return SideCenter
	}
}

// SortByEntry orders players by ascending entry order; pairs where
// either side lacks one (zero value) fall back to lexical id
// comparison. Returns a new slice.
func SortByEntry(players []player.Player) []player.Player {
	out := make([]player.Player, len(players))
	copy(out, players)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EntryOrder != 0 && out[j].EntryOrder != 0 {
			return out[i].EntryOrder < out[j].EntryOrder
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// EntryNumbers maps each player id to its 1-based position in the
// globally sorted roster. The number feeds the "entry" badge and is
// global, not per category group.
func EntryNumbers(players []player.Player) map[string]int {
	sorted := SortByEntry(players)
	out := make(map[string]int, len(sorted))
	for i, p := range sorted {
		out[p.ID] = i + 1
	}
	return out
}

// Badge is the single status label shown next to a player.
type Badge string

const (
	BadgeCaptain   Badge = "Capitano"
	BadgeMotm      Badge = "MOTM"
	BadgeStarter   Badge = "Titolare"
	BadgeAvailable Badge = "Disponibile"
	BadgeAbsent    Badge = "Assente"
	BadgeInjured   Badge = "Infortunato"
	BadgeSuspended Badge = "Squalificato"
)

// StatusBadge picks the player's badge with fixed precedence: captain
// beats man of the match beats "holds a slot" beats the raw status. A
// captain who is not assigned anywhere still shows as captain.
func StatusBadge(p player.Player, t team.Team, a selection.Assignment) Badge {
	if selection.IsCaptain(t, p) {
		return BadgeCaptain
	}
	if selection.IsMotm(t, p) {
		return BadgeMotm
	}
	if _, assigned := a.AssignedIDs()[p.ID]; assigned {
		return BadgeStarter
	}

	switch p.Status {
	case player.StatusAvailable:
		return BadgeAvailable
	case player.StatusAbsent:
		return BadgeAbsent
	case player.StatusInjured:
		return BadgeInjured
	case player.StatusSuspended:
		return BadgeSuspended
	default:
		return Badge(p.Status)
	}
}

// SideGroup holds one category's players split by pitch side, each in
// entry order.
type SideGroup struct {
	Left   []player.Player
	Center []player.Player
	Right  []player.Player
}

func (g SideGroup) Total() int {
	return len(g.Left) + len(g.Center) + len(g.Right)
}

// Hierarchy is the grouped roster view backing the hierarchy page.
type Hierarchy map[Category]SideGroup

// BuildHierarchy sorts the roster by entry order and groups it by
// category and side.
func BuildHierarchy(players []player.Player) Hierarchy {
	out := make(Hierarchy)
	for _, p := range SortByEntry(players) {
		category, side := Categorize(p)
		group := out[category]
		switch side {
		case SideLeft:
			group.Left = append(group.Left, p)
		case SideRight:
			group.Right = append(group.Right, p)
		default:
			group.Center = append(group.Center, p)
		}
		out[category] = group
	}
	return out
}
