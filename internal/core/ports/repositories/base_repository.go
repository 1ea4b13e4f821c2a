package repositories

import "context"

// ReferenceChecker answers the existence questions validation needs before a
// row is written.
type ReferenceChecker interface {
	// Exists reports whether table has a row with the given id.
	Exists(ctx context.Context, table string, id int64) (bool, error)

	// NameTaken reports whether a row other than exceptID already uses name.
	NameTaken(ctx context.Context, table, name string, exceptID int64) (bool, error)
}
