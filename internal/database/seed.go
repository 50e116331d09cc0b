package database

import (
	"context"
	"database/sql"

	"github.com/jask/suspenseaction/internal/database/repository"
)

// DefaultUsers are the rows SeedDefaults inserts, keyed by id.
var DefaultUsers = []string{
	"roggc",
	"roger",
	"rogue",
	"margaret",
	"gopher",
}

// SeedDefaults ensures the baseline users exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	users := repository.NewUserRepo(db)
	n, err := users.Count(ctx)
	if err == nil && n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for idx, name := range DefaultUsers {
			u := repository.User{ID: idx + 1, UID: repository.UserUID(name), Name: name}
			if err := repository.UpsertUserTx(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
}
