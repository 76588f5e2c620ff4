package plan

import (
	"context"
	"strconv"
	"strings"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/sqlite"
)

// sqliteProfileRepository persists the single-row user profile.
type sqliteProfileRepository struct {
	db *sqlite.Database
}

func newSQLiteProfileRepository(db *sqlite.Database) *sqliteProfileRepository {
	return &sqliteProfileRepository{db: db}
}

// Get retrieves the stored profile. The profile row is seeded by the schema
// fixtures, so a missing row is a programmer error and surfaces as such.
func (r *sqliteProfileRepository) Get(ctx context.Context) (Profile, error) {
	var (
		profile      Profile
		template     string
		trainDaysCSV string
		equipmentCSV string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT nivel, objetivo, plan_template, train_days, equipment, quiet,
		       weekly_xp_goal, weekly_minutes_goal
		FROM profile
		WHERE id = 1`).Scan(
		&profile.Nivel,
		&profile.Objetivo,
		&template,
		&trainDaysCSV,
		&equipmentCSV,
		&profile.Quiet,
		&profile.WeeklyXPGoal,
		&profile.WeeklyMinutesGoal,
	)
	if err != nil {
		return Profile{}, errors.Wrap(err, "query profile")
	}

	profile.PlanTemplate = Template(template)
	profile.TrainDays = parseDayCSV(trainDaysCSV)
	profile.Equipment = parseCSV(equipmentCSV)
	return profile, nil
}

// Set saves the profile, replacing the previous values.
func (r *sqliteProfileRepository) Set(ctx context.Context, profile Profile) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE profile
		SET nivel = ?, objetivo = ?, plan_template = ?, train_days = ?,
		    equipment = ?, quiet = ?, weekly_xp_goal = ?, weekly_minutes_goal = ?
		WHERE id = 1`,
		profile.Nivel,
		profile.Objetivo,
		string(profile.PlanTemplate),
		formatDayCSV(profile.TrainDays),
		strings.Join(profile.Equipment, ","),
		profile.Quiet,
		profile.WeeklyXPGoal,
		profile.WeeklyMinutesGoal,
	)
	if err != nil {
		return errors.Wrap(err, "save profile")
	}
	return nil
}

func parseCSV(csv string) []string {
	if csv == "" {
		return nil
	}
	var values []string
	for _, value := range strings.Split(csv, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

func parseDayCSV(csv string) []int {
	var days []int
	for _, value := range parseCSV(csv) {
		day, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

func formatDayCSV(days []int) string {
	values := make([]string, len(days))
	for i, day := range days {
		values[i] = strconv.Itoa(day)
	}
	return strings.Join(values, ",")
}
