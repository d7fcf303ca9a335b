package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/matchday/lineup-manager/internal/domain/player"
)

const (
	RatingMin = 1.0
	RatingMax = 10.0

	defaultRatingWorkers = 4
)

// RatingResult summarizes a batch rating submission.
type RatingResult struct {
	Updated int
	Failed  []string
}

// RatingService applies post-match ratings. Each player update commits
// independently: a failing entry does not roll back the ones that
// already succeeded, it only makes the batch report failure.
type RatingService struct {
	playerRepo player.Repository
	workers    int
}

func NewRatingService(playerRepo player.Repository, workers int) *RatingService {
	if workers <= 0 {
		workers = defaultRatingWorkers
	}
	return &RatingService{
		playerRepo: playerRepo,
		workers:    workers,
	}
}

// SubmitRatings validates and applies a player-id → rating map. The
// whole batch is rejected before any write when a rating falls outside
// [1, 10]. Per-player failures after that point are collected into one
// aggregate error while the remaining updates still commit.
func (s *RatingService) SubmitRatings(ctx context.Context, ratings map[string]float64) (RatingResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.SubmitRatings")
	defer span.End()

	if len(ratings) == 0 {
		return RatingResult{}, fmt.Errorf("%w: ratings map is empty", ErrInvalidInput)
	}
	for playerID, rating := range ratings {
		if playerID == "" {
			return RatingResult{}, fmt.Errorf("%w: player id cannot be empty", ErrInvalidInput)
		}
		if rating < RatingMin || rating > RatingMax {
			return RatingResult{}, fmt.Errorf("%w: rating %.1f for player %s outside [%.0f, %.0f]", ErrInvalidInput, rating, playerID, RatingMin, RatingMax)
		}
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return RatingResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	type failure struct {
		playerID string
		err      error
	}

	failures := make(chan failure, len(ratings))
	var updatedCount atomic.Int32

	var workers sync.WaitGroup
	for playerID, rating := range ratings {
		playerID, rating := playerID, rating
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			value := rating
			_, exists, updateErr := s.playerRepo.Update(ctx, playerID, player.Update{Rating: &value})
			switch {
			case updateErr != nil:
				failures <- failure{playerID: playerID, err: updateErr}
			case !exists:
				failures <- failure{playerID: playerID, err: fmt.Errorf("%w: player=%s", ErrNotFound, playerID)}
			default:
				updatedCount.Add(1)
			}
		}); err != nil {
			workers.Done()
			return RatingResult{}, fmt.Errorf("submit rating update to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(failures)

	result := RatingResult{Updated: int(updatedCount.Load())}

	var joined error
	for f := range failures {
		result.Failed = append(result.Failed, f.playerID)
		joined = crerr.CombineErrors(joined, fmt.Errorf("rate player %s: %w", f.playerID, f.err))
	}
	sort.Strings(result.Failed)

	if joined != nil {
		return result, fmt.Errorf("save ratings: %d of %d updates failed: %w", len(result.Failed), len(ratings), joined)
	}

	return result, nil
}
