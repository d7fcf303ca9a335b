package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchday/lineup-manager/internal/domain/lineup"
	"github.com/matchday/lineup-manager/internal/usecase"
)

func (h *Handler) ListLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineups")
	defer span.End()

	teamID := strings.TrimSpace(r.URL.Query().Get("teamId"))
	lineups, err := h.lineupService.ListLineups(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list lineups failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupDTO, 0, len(lineups))
	for _, l := range lineups {
		items = append(items, lineupToDTO(ctx, l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	lineupID := r.PathValue("lineupID")
	item, err := h.lineupService.GetLineup(ctx, lineupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "lineup_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(ctx, item))
}

func (h *Handler) CreateLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLineup")
	defer span.End()

	var req lineupCreateRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.lineupService.CreateLineup(ctx, lineup.Insert{
		TeamID:    req.TeamID,
		Name:      req.Name,
		Formation: req.Formation,
		Positions: req.Positions,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create lineup failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, lineupToDTO(ctx, item))
}

func (h *Handler) UpdateLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLineup")
	defer span.End()

	lineupID := strings.TrimSpace(r.PathValue("lineupID"))
	var req lineupUpdateRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.lineupService.UpdateLineup(ctx, lineupID, lineup.Update{
		TeamID:    req.TeamID,
		Name:      req.Name,
		Formation: req.Formation,
		Positions: req.Positions,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update lineup failed", "lineup_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(ctx, item))
}

func (h *Handler) DeleteLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLineup")
	defer span.End()

	lineupID := strings.TrimSpace(r.PathValue("lineupID"))
	if err := h.lineupService.DeleteLineup(ctx, lineupID); err != nil {
		h.logger.WarnContext(ctx, "delete lineup failed", "lineup_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

type lineupCreateRequest struct {
	TeamID    string            `json:"teamId" validate:"required"`
	Name      string            `json:"name" validate:"required,max=100"`
	Formation string            `json:"formation" validate:"required,max=20"`
	Positions map[string]string `json:"positions"`
}

type lineupUpdateRequest struct {
	TeamID    *string           `json:"teamId" validate:"omitempty,min=1"`
	Name      *string           `json:"name" validate:"omitempty,min=1,max=100"`
	Formation *string           `json:"formation" validate:"omitempty,min=1,max=20"`
	Positions map[string]string `json:"positions"`
}

type lineupDTO struct {
	ID        string            `json:"id"`
	TeamID    string            `json:"teamId"`
	Name      string            `json:"name"`
	Formation string            `json:"formation"`
	Positions map[string]string `json:"positions"`
}

func lineupToDTO(ctx context.Context, v lineup.Lineup) lineupDTO {
	ctx, span := startSpan(ctx, "httpapi.lineupToDTO")
	defer span.End()

	positions := make(map[string]string, len(v.Positions))
	for code, playerID := range v.Positions {
		positions[code] = playerID
	}

	return lineupDTO{
		ID:        v.ID,
		TeamID:    v.TeamID,
		Name:      v.Name,
		Formation: v.Formation,
		Positions: positions,
	}
}
