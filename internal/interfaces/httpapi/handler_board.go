package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/matchday/lineup-manager/internal/domain/selection"
	"github.com/matchday/lineup-manager/internal/usecase"
)

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	query := r.URL.Query()
	formationKey := strings.TrimSpace(query.Get("formation"))
	assignment, err := usecase.DecodeAssignment(query.Get("lineup"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.boardService.BuildBoard(ctx, formationKey, assignment)
	if err != nil {
		h.logger.WarnContext(ctx, "build board failed", "formation", formationKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(ctx, board))
}

func (h *Handler) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHierarchy")
	defer span.End()

	assignment, err := usecase.DecodeAssignment(r.URL.Query().Get("lineup"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.boardService.BuildHierarchy(ctx, assignment)
	if err != nil {
		h.logger.WarnContext(ctx, "build hierarchy failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]hierarchyGroupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, hierarchyGroupToDTO(ctx, g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type boardSlotDTO struct {
	Code        string     `json:"code"`
	DisplayName string     `json:"displayName"`
	Player      *playerDTO `json:"player,omitempty"`
	Captain     bool       `json:"captain"`
	Motm        bool       `json:"motm"`
}

type statsDTO struct {
	Starters int `json:"starters"`
	Bench    int `json:"bench"`
	Absent   int `json:"absent"`
}

type boardDTO struct {
	Team      teamDTO        `json:"team"`
	Formation string         `json:"formation"`
	Slots     []boardSlotDTO `json:"slots"`
	Pool      []playerDTO    `json:"pool"`
	Stats     statsDTO       `json:"stats"`
}

type hierarchyEntryDTO struct {
	Player      playerDTO `json:"player"`
	EntryNumber int       `json:"entryNumber"`
	Badge       string    `json:"badge"`
	Position    string    `json:"position"`
}

type hierarchyGroupDTO struct {
	Category string              `json:"category"`
	Left     []hierarchyEntryDTO `json:"left"`
	Center   []hierarchyEntryDTO `json:"center"`
	Right    []hierarchyEntryDTO `json:"right"`
}

func boardToDTO(ctx context.Context, v usecase.Board) boardDTO {
	ctx, span := startSpan(ctx, "httpapi.boardToDTO")
	defer span.End()

	pool := make([]playerDTO, 0, len(v.Pool))
	for _, p := range v.Pool {
		pool = append(pool, playerToDTO(ctx, p))
	}

	return boardDTO{
		Team:      teamToDTO(ctx, v.Team),
		Formation: v.Formation,
		Slots:     boardSlotsToDTO(ctx, v.Slots),
		Pool:      pool,
		Stats:     statsToDTO(ctx, v.Stats),
	}
}

func boardSlotsToDTO(ctx context.Context, slots []usecase.BoardSlot) []boardSlotDTO {
	ctx, span := startSpan(ctx, "httpapi.boardSlotsToDTO")
	defer span.End()

	items := make([]boardSlotDTO, 0, len(slots))
	for _, s := range slots {
		item := boardSlotDTO{
			Code:        s.Code,
			DisplayName: s.DisplayName,
			Captain:     s.Captain,
			Motm:        s.Motm,
		}
		if s.Player != nil {
			dto := playerToDTO(ctx, *s.Player)
			item.Player = &dto
		}
		items = append(items, item)
	}

	return items
}

func statsToDTO(_ context.Context, v selection.Stats) statsDTO {
	return statsDTO{
		Starters: v.Starters,
		Bench:    v.Bench,
		Absent:   v.Absent,
	}
}

func hierarchyGroupToDTO(ctx context.Context, v usecase.HierarchyGroup) hierarchyGroupDTO {
	ctx, span := startSpan(ctx, "httpapi.hierarchyGroupToDTO")
	defer span.End()

	return hierarchyGroupDTO{
		Category: string(v.Category),
		Left:     hierarchyEntriesToDTO(ctx, v.Left),
		Center:   hierarchyEntriesToDTO(ctx, v.Center),
		Right:    hierarchyEntriesToDTO(ctx, v.Right),
	}
}

func hierarchyEntriesToDTO(ctx context.Context, entries []usecase.HierarchyEntry) []hierarchyEntryDTO {
	items := make([]hierarchyEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, hierarchyEntryDTO{
			Player:      playerToDTO(ctx, e.Player),
			EntryNumber: e.EntryNumber,
			Badge:       string(e.Badge),
			Position:    e.Position,
		})
	}

	return items
}
