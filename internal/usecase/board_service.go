package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/matchday/lineup-manager/internal/domain/formation"
	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/domain/roster"
	"github.com/matchday/lineup-manager/internal/domain/selection"
	"github.com/matchday/lineup-manager/internal/domain/team"
)

// BoardSlot is one formation position on the match board, with its
// occupant resolved against the roster when one is assigned.
type BoardSlot struct {
	Code        string
	DisplayName string
	Player      *player.Player
	Captain     bool
	Motm        bool
}

// Board is the derived editor view for one formation + assignment.
type Board struct {
	Team      team.Team
	Formation string
	Slots     []BoardSlot
	Pool      []player.Player
	Stats     selection.Stats
}

// HierarchyEntry decorates a player with its display metadata for the
// grouped roster view.
type HierarchyEntry struct {
	Player      player.Player
	EntryNumber int
	Badge       roster.Badge
	Position    string
}

// HierarchyGroup is one category of the roster hierarchy, split by side.
type HierarchyGroup struct {
	Category roster.Category
	Left     []HierarchyEntry
	Center   []HierarchyEntry
	Right    []HierarchyEntry
}

// BoardService computes the derived views consumed by the interactive
// editor. It only reads; assignment edits stay client-side until the
// user saves a lineup.
type BoardService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewBoardService(playerRepo player.Repository, teamRepo team.Repository) *BoardService {
	return &BoardService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// BuildBoard resolves a formation and an assignment into the board
// view. An empty formationKey falls back to the current team's
// formation. Stale assigned ids resolve to empty slots.
func (s *BoardService) BuildBoard(ctx context.Context, formationKey string, a selection.Assignment) (Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.BuildBoard")
	defer span.End()

	players, currentTeam, err := s.fetchRosterAndTeam(ctx)
	if err != nil {
		return Board{}, err
	}

	formationKey = strings.TrimSpace(formationKey)
	if formationKey == "" {
		formationKey = currentTeam.Formation
	}
	slots, err := formation.Slots(formationKey)
	if err != nil {
		return Board{}, fmt.Errorf("%w: formation=%s", ErrInvalidInput, formationKey)
	}

	boardSlots := make([]BoardSlot, 0, len(slots))
	for _, code := range slots {
		slot := BoardSlot{
			Code:        code,
			DisplayName: formation.DisplayName(code),
		}
		if occupant, ok := selection.PlayerAt(a, players, code); ok {
			p := occupant
			slot.Player = &p
			slot.Captain = selection.IsCaptain(currentTeam, p)
			slot.Motm = selection.IsMotm(currentTeam, p)
		}
		boardSlots = append(boardSlots, slot)
	}

	return Board{
		Team:      currentTeam,
		Formation: formationKey,
		Slots:     boardSlots,
		Pool:      selection.UnassignedAvailable(a, players),
		Stats:     selection.ComputeStats(a, players),
	}, nil
}

// BuildHierarchy groups the whole roster by role family and pitch side,
// ordered by registration, with a global entry number and the badge
// precedence of the editor.
func (s *BoardService) BuildHierarchy(ctx context.Context, a selection.Assignment) ([]HierarchyGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.BuildHierarchy")
	defer span.End()

	players, currentTeam, err := s.fetchRosterAndTeam(ctx)
	if err != nil {
		return nil, err
	}

	grouped := roster.BuildHierarchy(players)
	entryNumbers := roster.EntryNumbers(players)

	decorate := func(items []player.Player) []HierarchyEntry {
		out := make([]HierarchyEntry, 0, len(items))
		for _, p := range items {
			out = append(out, HierarchyEntry{
				Player:      p,
				EntryNumber: entryNumbers[p.ID],
				Badge:       roster.StatusBadge(p, currentTeam, a),
				Position:    formation.DisplayName(p.PreferredPosition),
			})
		}
		return out
	}

	categories := []roster.Category{
		roster.CategoryGoalkeepers,
		roster.CategoryDefenders,
		roster.CategoryMidfielders,
		roster.CategoryAttackers,
		roster.CategoryOthers,
	}

	out := make([]HierarchyGroup, 0, len(categories))
	for _, category := range categories {
		group, ok := grouped[category]
		if !ok || group.Total() == 0 {
			continue
		}
		out = append(out, HierarchyGroup{
			Category: category,
			Left:     decorate(group.Left),
			Center:   decorate(group.Center),
			Right:    decorate(group.Right),
		})
	}

	return out, nil
}

// fetchRosterAndTeam loads the roster and the current team in parallel.
// A missing current team is not fatal for read views; the zero team
// simply yields no captain or MOTM matches.
func (s *BoardService) fetchRosterAndTeam(ctx context.Context) ([]player.Player, team.Team, error) {
	var (
		players    []player.Player
		teams      []team.Team
		playersErr error
		teamsErr   error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		players, playersErr = s.playerRepo.List(ctx)
	})
	wg.Go(func() {
		teams, teamsErr = s.teamRepo.List(ctx)
	})
	wg.Wait()

	if playersErr != nil {
		return nil, team.Team{}, fmt.Errorf("list players: %w", playersErr)
	}
	if teamsErr != nil {
		return nil, team.Team{}, fmt.Errorf("list teams: %w", teamsErr)
	}

	var currentTeam team.Team
	if len(teams) > 0 {
		currentTeam = teams[0]
	}

	return players, currentTeam, nil
}
