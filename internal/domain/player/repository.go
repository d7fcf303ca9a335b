package player

import "context"

// Repository exposes roster persistence operations. List returns
// players in registration order.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	Create(ctx context.Context, in Insert) (Player, error)
	Update(ctx context.Context, id string, in Update) (Player, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
