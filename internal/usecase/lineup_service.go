package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchday/lineup-manager/internal/domain/formation"
	"github.com/matchday/lineup-manager/internal/domain/lineup"
)

// LineupService manages named, saved lineup snapshots. The live editor
// assignment never touches it unless the user explicitly saves.
type LineupService struct {
	lineupRepo lineup.Repository
}

func NewLineupService(lineupRepo lineup.Repository) *LineupService {
	return &LineupService{lineupRepo: lineupRepo}
}

func (s *LineupService) ListLineups(ctx context.Context, teamID string) ([]lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ListLineups")
	defer span.End()

	items, err := s.lineupRepo.List(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}

	return items, nil
}

func (s *LineupService) GetLineup(ctx context.Context, lineupID string) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetLineup")
	defer span.End()

	lineupID = strings.TrimSpace(lineupID)
	if lineupID == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: lineup id is required", ErrInvalidInput)
	}

	item, exists, err := s.lineupRepo.GetByID(ctx, lineupID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get lineup by id: %w", err)
	}
	if !exists {
		return lineup.Lineup{}, fmt.Errorf("%w: lineup=%s", ErrNotFound, lineupID)
	}

	return item, nil
}

func (s *LineupService) CreateLineup(ctx context.Context, in lineup.Insert) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.CreateLineup")
	defer span.End()

	in.TeamID = strings.TrimSpace(in.TeamID)
	in.Name = strings.TrimSpace(in.Name)
	if in.TeamID == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if in.Name == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: lineup name is required", ErrInvalidInput)
	}
	if !formation.Known(in.Formation) {
		return lineup.Lineup{}, fmt.Errorf("%w: formation=%s", ErrInvalidInput, in.Formation)
	}

	item, err := s.lineupRepo.Create(ctx, in)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("create lineup: %w", err)
	}

	return item, nil
}

func (s *LineupService) UpdateLineup(ctx context.Context, lineupID string, in lineup.Update) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.UpdateLineup")
	defer span.End()

	lineupID = strings.TrimSpace(lineupID)
	if lineupID == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: lineup id is required", ErrInvalidInput)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: lineup name cannot be empty", ErrInvalidInput)
	}
	if in.Formation != nil && !formation.Known(*in.Formation) {
		return lineup.Lineup{}, fmt.Errorf("%w: formation=%s", ErrInvalidInput, *in.Formation)
	}

	item, exists, err := s.lineupRepo.Update(ctx, lineupID, in)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("update lineup: %w", err)
	}
	if !exists {
		return lineup.Lineup{}, fmt.Errorf("%w: lineup=%s", ErrNotFound, lineupID)
	}

	return item, nil
}

func (s *LineupService) DeleteLineup(ctx context.Context, lineupID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.DeleteLineup")
	defer span.End()

	lineupID = strings.TrimSpace(lineupID)
	if lineupID == "" {
		return fmt.Errorf("%w: lineup id is required", ErrInvalidInput)
	}

	removed, err := s.lineupRepo.Delete(ctx, lineupID)
	if err != nil {
		return fmt.Errorf("delete lineup: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: lineup=%s", ErrNotFound, lineupID)
	}

	return nil
}
