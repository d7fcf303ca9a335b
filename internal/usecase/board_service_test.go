package usecase

import (
	"errors"
	"testing"

	"github.com/matchday/lineup-manager/internal/domain/player"
	"github.com/matchday/lineup-manager/internal/domain/roster"
	"github.com/matchday/lineup-manager/internal/domain/selection"
	"github.com/matchday/lineup-manager/internal/domain/team"
	"github.com/matchday/lineup-manager/internal/infrastructure/repository/memory"
	"github.com/matchday/lineup-manager/internal/platform/id"
)

type boardFixture struct {
	players *memory.PlayerRepository
	teams   *memory.TeamRepository
	svc     *BoardService
}

func newBoardFixture(t *testing.T) boardFixture {
	t.Helper()
	ids := id.NewRandomGenerator()
	players := memory.NewPlayerRepository(ids)
	teams := memory.NewTeamRepository(ids)
	return boardFixture{
		players: players,
		teams:   teams,
		svc:     NewBoardService(players, teams),
	}
}

func (f boardFixture) addPlayer(t *testing.T, name, pos string, status player.Status) player.Player {
	t.Helper()
	created, err := f.players.Create(t.Context(), player.Insert{
		Name:              name,
		PreferredPosition: pos,
		Status:            status,
	})
	if err != nil {
		t.Fatalf("create player %s: %v", name, err)
	}
	return created
}

func TestBoardService_BuildBoard(t *testing.T) {
	f := newBoardFixture(t)

	keeper := f.addPlayer(t, "Keeper", "GK", player.StatusAvailable)
	back := f.addPlayer(t, "Back", "LB", player.StatusAvailable)
	f.addPlayer(t, "Benched", "CM", player.StatusAvailable)
	f.addPlayer(t, "Out", "ST", player.StatusInjured)

	if _, err := f.teams.Create(t.Context(), team.Insert{Name: "AC Test", Formation: "4-4-2", CaptainID: keeper.ID}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	a := selection.Assignment{"GK": keeper.ID, "LB": back.ID, "CB1": "ghost"}
	board, err := f.svc.BuildBoard(t.Context(), "", a)
	if err != nil {
		t.Fatalf("build board: %v", err)
	}

	if board.Formation != "4-4-2" {
		t.Fatalf("formation fallback: got=%s want=4-4-2", board.Formation)
	}
	if len(board.Slots) != 11 {
		t.Fatalf("slot count: got=%d want=11", len(board.Slots))
	}

	gk := board.Slots[0]
	if gk.Code != "GK" || gk.DisplayName != "POR" {
		t.Fatalf("unexpected GK slot: %+v", gk)
	}
	if gk.Player == nil || gk.Player.ID != keeper.ID {
		t.Fatalf("expected keeper in GK slot")
	}
	if !gk.Captain {
		t.Fatalf("expected captain flag on GK slot")
	}

	for _, slot := range board.Slots {
		if slot.Code == "CB1" && slot.Player != nil {
			t.Fatalf("stale id should leave slot empty")
		}
	}

	if len(board.Pool) != 1 || board.Pool[0].Name != "Benched" {
		t.Fatalf("unexpected pool: %v", board.Pool)
	}
	if board.Stats.Starters != 3 {
		t.Fatalf("starters counts raw assignment entries: got=%d want=3", board.Stats.Starters)
	}
}

func TestBoardService_BuildBoard_UnknownFormation(t *testing.T) {
	f := newBoardFixture(t)
	if _, err := f.teams.Create(t.Context(), team.Insert{Name: "AC Test"}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	_, err := f.svc.BuildBoard(t.Context(), "9-1-0", selection.Assignment{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBoardService_BuildBoard_NoTeamTolerated(t *testing.T) {
	f := newBoardFixture(t)

	board, err := f.svc.BuildBoard(t.Context(), "4-3-3", selection.Assignment{})
	if err != nil {
		t.Fatalf("build board without a team: %v", err)
	}
	if board.Team.ID != "" {
		t.Fatalf("expected zero team, got %+v", board.Team)
	}
}

func TestBoardService_BuildHierarchy(t *testing.T) {
	f := newBoardFixture(t)

	keeper := f.addPlayer(t, "Keeper", "GK", player.StatusAvailable)
	f.addPlayer(t, "Left Back", "LB", player.StatusAvailable)
	f.addPlayer(t, "Right Back", "RB", player.StatusAvailable)
	f.addPlayer(t, "Sweeper", "SW", player.StatusAvailable)

	if _, err := f.teams.Create(t.Context(), team.Insert{Name: "AC Test", CaptainID: keeper.ID}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	groups, err := f.svc.BuildHierarchy(t.Context(), selection.Assignment{})
	if err != nil {
		t.Fatalf("build hierarchy: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("group count: got=%d want=3", len(groups))
	}
	if groups[0].Category != roster.CategoryGoalkeepers {
		t.Fatalf("first group: got=%s", groups[0].Category)
	}
	if groups[1].Category != roster.CategoryDefenders {
		t.Fatalf("second group: got=%s", groups[1].Category)
	}
	if groups[2].Category != roster.CategoryOthers {
		t.Fatalf("third group: got=%s", groups[2].Category)
	}

	gkEntry := groups[0].Center[0]
	if gkEntry.Badge != roster.BadgeCaptain {
		t.Fatalf("captain badge: got=%s", gkEntry.Badge)
	}
	if gkEntry.EntryNumber != 1 {
		t.Fatalf("entry number: got=%d want=1", gkEntry.EntryNumber)
	}
	if gkEntry.Position != "POR" {
		t.Fatalf("position label: got=%s want=POR", gkEntry.Position)
	}

	defenders := groups[1]
	if len(defenders.Left) != 1 || len(defenders.Right) != 1 {
		t.Fatalf("unexpected defender sides: %+v", defenders)
	}

	// SW has no display-name mapping and echoes back raw.
	if groups[2].Center[0].Position != "SW" {
		t.Fatalf("unmapped position label: got=%s", groups[2].Center[0].Position)
	}
}
