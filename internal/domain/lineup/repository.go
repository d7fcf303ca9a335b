package lineup

import "context"

// Repository exposes saved-lineup persistence operations. List with an
// empty teamID returns every lineup; otherwise it filters by owner.
type Repository interface {
	List(ctx context.Context, teamID string) ([]Lineup, error)
	GetByID(ctx context.Context, id string) (Lineup, bool, error)
	Create(ctx context.Context, in Insert) (Lineup, error)
	Update(ctx context.Context, id string, in Update) (Lineup, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
