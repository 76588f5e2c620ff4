package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/sqlite"
)

// sqlitePlanRepository stores generated plans as opaque JSON payloads.
type sqlitePlanRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLitePlanRepository(db *sqlite.Database, logger *slog.Logger) *sqlitePlanRepository {
	return &sqlitePlanRepository{db: db, logger: logger}
}

// Create stores a newly generated plan.
func (r *sqlitePlanRepository) Create(ctx context.Context, plan Plan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return errors.Wrap(err, "encode plan")
	}
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO plans (created_at, payload) VALUES (?, ?)`,
		plan.CreatedAt.UTC().Format(timestampFormat), string(payload))
	if err != nil {
		return errors.Wrap(err, "insert plan")
	}
	return nil
}

// Latest returns the most recently created plan, or ErrNotFound when no plan
// has been generated yet.
func (r *sqlitePlanRepository) Latest(ctx context.Context) (Plan, error) {
	plan, _, err := r.latestWithID(ctx)
	return plan, err
}

func (r *sqlitePlanRepository) latestWithID(ctx context.Context) (Plan, int64, error) {
	var (
		id      int64
		payload string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, payload FROM plans ORDER BY id DESC LIMIT 1`).Scan(&id, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Plan{}, 0, errors.Wrap(ErrNotFound, "latest plan")
	}
	if err != nil {
		return Plan{}, 0, errors.Wrap(err, "query latest plan")
	}

	var plan Plan
	if err = json.Unmarshal([]byte(payload), &plan); err != nil {
		return Plan{}, 0, errors.Wrap(err, "decode plan", slog.Int64("id", id))
	}
	return plan, id, nil
}

// UpdateLatest applies fn to the most recent plan and writes the result back
// under the same id.
func (r *sqlitePlanRepository) UpdateLatest(ctx context.Context, fn func(*Plan) error) (Plan, error) {
	plan, id, err := r.latestWithID(ctx)
	if err != nil {
		return Plan{}, err
	}
	if err = fn(&plan); err != nil {
		return Plan{}, err
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return Plan{}, errors.Wrap(err, "encode plan")
	}
	if _, err = r.db.ReadWrite.ExecContext(ctx, `
		UPDATE plans SET payload = ? WHERE id = ?`, string(payload), id); err != nil {
		return Plan{}, errors.Wrap(err, "update plan", slog.Int64("id", id))
	}
	return plan, nil
}
