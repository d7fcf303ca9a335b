package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchday/lineup-manager/internal/domain/team"
	"github.com/matchday/lineup-manager/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCurrentTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentTeam")
	defer span.End()

	item, err := h.teamService.CurrentTeam(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get current team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req teamCreateRequest
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

	item, err := h.teamService.CreateTeam(ctx, team.Insert{
		Name:      req.Name,
		Coach:     req.Coach,
		Formation: req.Formation,
		CaptainID: req.CaptainID,
		MotmID:    req.MotmID,
		LogoURL:   req.LogoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(ctx, item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req teamUpdateRequest
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

	item, err := h.teamService.UpdateTeam(ctx, teamID, team.Update{
		Name:      req.Name,
		Coach:     req.Coach,
		Formation: req.Formation,
		CaptainID: req.CaptainID,
		MotmID:    req.MotmID,
		LogoURL:   req.LogoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

type teamCreateRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Coach     string `json:"coach" validate:"max=100"`
	Formation string `json:"formation" validate:"omitempty,max=20"`
	CaptainID string `json:"captainId"`
	MotmID    string `json:"motmId"`
	LogoURL   string `json:"logoUrl" validate:"omitempty,url"`
}

type teamUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Coach     *string `json:"coach" validate:"omitempty,max=100"`
	Formation *string `json:"formation" validate:"omitempty,max=20"`
	CaptainID *string `json:"captainId"`
	MotmID    *string `json:"motmId"`
	LogoURL   *string `json:"logoUrl" validate:"omitempty,url"`
}

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Coach     string `json:"coach,omitempty"`
	Formation string `json:"formation"`
	CaptainID string `json:"captainId,omitempty"`
	MotmID    string `json:"motmId,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		Coach:     v.Coach,
		Formation: v.Formation,
		CaptainID: v.CaptainID,
		MotmID:    v.MotmID,
		LogoURL:   v.LogoURL,
	}
}
