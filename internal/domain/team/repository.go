package team

import "context"

// Repository exposes team persistence operations. List returns teams
// in creation order; the first one is the editor's current team.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id string) (Team, bool, error)
	Create(ctx context.Context, in Insert) (Team, error)
	Update(ctx context.Context, id string, in Update) (Team, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
