package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/matchday/lineup-manager/internal/config"
	"github.com/matchday/lineup-manager/internal/infrastructure/repository/memory"
	"github.com/matchday/lineup-manager/internal/interfaces/httpapi"
	idgen "github.com/matchday/lineup-manager/internal/platform/id"
	"github.com/matchday/lineup-manager/internal/platform/logging"
	"github.com/matchday/lineup-manager/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	ids := idgen.NewRandomGenerator()
	playerRepo := memory.NewPlayerRepository(ids)
	teamRepo := memory.NewTeamRepository(ids)
	lineupRepo := memory.NewLineupRepository(ids)

	if cfg.SeedDefaultTeam {
		seeded, err := memory.SeedDefaultTeam(context.Background(), teamRepo)
		if err != nil {
			return nil, fmt.Errorf("seed default team: %w", err)
		}
		logger.Info("default team seeded", "team_id", seeded.ID, "name", seeded.Name)
	}

	playerSvc := usecase.NewPlayerService(playerRepo)
	teamSvc := usecase.NewTeamService(teamRepo)
	lineupSvc := usecase.NewLineupService(lineupRepo)
	boardSvc := usecase.NewBoardService(playerRepo, teamRepo)
	shareSvc := usecase.NewShareService(playerRepo, teamRepo)
	ratingSvc := usecase.NewRatingService(playerRepo, cfg.RatingWorkers)

	handler := httpapi.NewHandler(playerSvc, teamSvc, lineupSvc, boardSvc, shareSvc, ratingSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
