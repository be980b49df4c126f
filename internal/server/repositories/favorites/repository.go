package favorites

import "context"

// Repository records which users favorited which items. Both operations are
// idempotent.
type Repository interface {
	Add(ctx context.Context, userID, itemID int64) error
	Remove(ctx context.Context, userID, itemID int64) error
}
