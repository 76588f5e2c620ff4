package plan

import (
	"log/slog"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/sqlite"
)

// ErrNotFound is returned when a requested aggregate does not exist.
var ErrNotFound = errors.NewSentinel("not found")

const timestampFormat = "2006-01-02T15:04:05.000Z"

// repository bundles the SQLite-backed aggregate repositories of the plan
// domain.
type repository struct {
	profile *sqliteProfileRepository
	plans   *sqlitePlanRepository
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{
		profile: newSQLiteProfileRepository(db),
		plans:   newSQLitePlanRepository(db, logger),
	}
}
