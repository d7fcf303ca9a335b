package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchday/lineup-manager/internal/domain/formation"
	"github.com/matchday/lineup-manager/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// CurrentTeam returns the team the interactive editor binds to: the
// first team in creation order.
func (s *TeamService) CurrentTeam(ctx context.Context) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CurrentTeam")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return team.Team{}, fmt.Errorf("%w: no teams exist", ErrNotFound)
	}

	return teams[0], nil
}

func (s *TeamService) CreateTeam(ctx context.Context, in team.Insert) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	if in.Formation != "" && !formation.Known(in.Formation) {
		return team.Team{}, fmt.Errorf("%w: formation=%s", ErrInvalidInput, in.Formation)
	}

	item, err := s.teamRepo.Create(ctx, in)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return item, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, in team.Update) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if in.Formation != nil && !formation.Known(*in.Formation) {
		return team.Team{}, fmt.Errorf("%w: formation=%s", ErrInvalidInput, *in.Formation)
	}

	item, exists, err := s.teamRepo.Update(ctx, teamID, in)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	removed, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}
