package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// Store persists a catalog snapshot in the application database so that later
// plan generations work without network access.
type Store struct {
	db *sqlite.Database
}

// NewStore creates a catalog store on top of the given database.
func NewStore(db *sqlite.Database) *Store {
	return &Store{db: db}
}

// Snapshot loads the cached catalog. An empty slice means no snapshot exists.
func (st *Store) Snapshot(ctx context.Context) ([]Exercise, error) {
	rows, err := st.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, name_es, body_part, target, secondary_muscles,
		       equipment, category, difficulty, instructions, description, description_es, gif_url
		FROM catalog_exercises
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query catalog snapshot")
	}
	defer func() { _ = rows.Close() }()

	var exercises []Exercise
	for rows.Next() {
		var (
			exercise         Exercise
			secondaryMuscles string
			instructions     string
		)
		if err = rows.Scan(
			&exercise.ID, &exercise.Name, &exercise.NameES, &exercise.BodyPart, &exercise.Target,
			&secondaryMuscles, &exercise.Equipment, &exercise.Category, &exercise.Difficulty,
			&instructions, &exercise.Description, &exercise.DescriptionES, &exercise.GifURL,
		); err != nil {
			return nil, errors.Wrap(err, "scan catalog exercise")
		}
		if err = json.Unmarshal([]byte(secondaryMuscles), &exercise.SecondaryMuscles); err != nil {
			return nil, errors.Wrap(err, "decode secondary muscles")
		}
		if err = json.Unmarshal([]byte(instructions), &exercise.Instructions); err != nil {
			return nil, errors.Wrap(err, "decode instructions")
		}
		exercises = append(exercises, exercise)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate catalog snapshot")
	}

	return exercises, nil
}

// Replace swaps the cached snapshot for the given exercises in one transaction.
func (st *Store) Replace(ctx context.Context, exercises []Exercise) error {
	tx, err := st.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin catalog replace")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM catalog_exercises`); err != nil {
		return errors.Wrap(err, "clear catalog snapshot")
	}

	fetchedAt := time.Now().UTC().Format(timestampFormat)
	for _, exercise := range exercises {
		var (
			secondaryMuscles []byte
			instructions     []byte
		)
		if secondaryMuscles, err = json.Marshal(exercise.SecondaryMuscles); err != nil {
			return errors.Wrap(err, "encode secondary muscles")
		}
		if instructions, err = json.Marshal(exercise.Instructions); err != nil {
			return errors.Wrap(err, "encode instructions")
		}

		if _, err = tx.ExecContext(ctx, `
			INSERT INTO catalog_exercises (
				id, name, name_es, body_part, target, secondary_muscles,
				equipment, category, difficulty, instructions, description, description_es, gif_url, fetched_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			exercise.ID, exercise.Name, exercise.NameES, exercise.BodyPart, exercise.Target,
			string(secondaryMuscles), exercise.Equipment, exercise.Category, exercise.Difficulty,
			string(instructions), exercise.Description, exercise.DescriptionES, exercise.GifURL, fetchedAt,
		); err != nil {
			return errors.Wrap(err, "insert catalog exercise")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit catalog replace")
	}
	return nil
}
