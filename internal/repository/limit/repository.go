// Package limit implements the per-user daily counters guarding product
// edits and order reopens. Both checks are single conditional statements so
// concurrent requests cannot overrun a ceiling.
package limit

import "context"

type Repository interface {
	// TryIncrementEdit bumps the user's edit counter for the date if it is
	// still below max, returning the new count and whether the edit is
	// allowed. When the ceiling is hit nothing is written.
	TryIncrementEdit(ctx context.Context, userID, date string, max int) (int, bool, error)
	EditCount(ctx context.Context, userID, date string) (int, error)

	// TryRecordReopen records one reopen of the order for (user, date) if
	// the user still has reopens left, returning whether it was recorded.
	TryRecordReopen(ctx context.Context, orderID, userID, date string, max int) (bool, error)
}
