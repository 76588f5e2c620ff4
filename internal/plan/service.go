package plan

import (
	"context"
	"log/slog"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/sqlite"
)

// Service handles the business logic for plan management: resolving an
// exercise pool, generating and persisting plans, and profile upkeep.
type Service struct {
	repo      *repository
	store     *catalog.Store
	session   *catalog.Session
	describer *catalog.Describer
	logger    *slog.Logger
}

// NewService creates a new plan service. describer may be nil, in which case
// generated exercise descriptions are skipped.
func NewService(
	db *sqlite.Database,
	logger *slog.Logger,
	session *catalog.Session,
	describer *catalog.Describer,
) *Service {
	return &Service{
		repo:      newRepository(db, logger),
		store:     catalog.NewStore(db),
		session:   session,
		describer: describer,
		logger:    logger,
	}
}

// GetProfile retrieves the stored user profile.
func (s *Service) GetProfile(ctx context.Context) (Profile, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return Profile{}, errors.Wrap(err, "get profile")
	}
	return profile, nil
}

// SaveProfile saves the user profile.
func (s *Service) SaveProfile(ctx context.Context, profile Profile) error {
	if err := s.repo.profile.Set(ctx, profile); err != nil {
		return errors.Wrap(err, "save profile")
	}
	return nil
}

// GenerateOpts tunes one GeneratePlan call.
type GenerateOpts struct {
	// ForceLocal skips the network fetch and uses only the cached snapshot
	// or the built-in exercise list.
	ForceLocal bool
	// AdjustLevelDelta nudges the effective level by one notch, typically
	// the output of LevelAdjustment.
	AdjustLevelDelta int
}

// GeneratePlan generates a fresh weekly plan from the stored profile and
// persists it. Catalog fetch failures never fail generation; the pool
// degrades through cache and the built-in fallback list instead.
func (s *Service) GeneratePlan(ctx context.Context, opts GenerateOpts) (Plan, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return Plan{}, errors.Wrap(err, "get profile")
	}

	pool := s.resolvePool(ctx, profile, opts.ForceLocal)
	plan := AssemblePlan(pool, profile, GenerateOptions{AdjustLevelDelta: opts.AdjustLevelDelta})

	if err = s.repo.plans.Create(ctx, plan); err != nil {
		return Plan{}, errors.Wrap(err, "store plan")
	}
	return plan, nil
}

// resolvePool finds the largest available exercise pool: the cached catalog
// snapshot first, then a per-body-part network fetch for the profile's goal,
// then the built-in static list. A fetched pool is cached best-effort.
func (s *Service) resolvePool(ctx context.Context, profile Profile, forceLocal bool) []catalog.Exercise {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "read catalog snapshot", errors.SlogError(err))
	}
	if len(snapshot) > 0 {
		return snapshot
	}

	if !forceLocal && s.session != nil {
		fetched := s.session.FetchBodyParts(ctx, GoalBodyParts(profile.Objetivo))
		if len(fetched) > 0 {
			if err = s.store.Replace(ctx, fetched); err != nil {
				s.logger.LogAttrs(ctx, slog.LevelWarn, "cache catalog snapshot", errors.SlogError(err))
			}
			return fetched
		}
	}

	return catalog.StaticFallback()
}

// LatestPlan returns the most recently generated plan, or ErrNotFound when
// none exists.
func (s *Service) LatestPlan(ctx context.Context) (Plan, error) {
	plan, err := s.repo.plans.Latest(ctx)
	if err != nil {
		return Plan{}, errors.Wrap(err, "get latest plan")
	}
	return plan, nil
}

// RegenerateDay redraws the exercises of one day of the latest plan from its
// stored pool snapshot, keeping the other days untouched.
func (s *Service) RegenerateDay(ctx context.Context, dayIndex int) (Plan, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return Plan{}, errors.Wrap(err, "get profile")
	}

	plan, err := s.repo.plans.UpdateLatest(ctx, func(p *Plan) error {
		if dayIndex < 0 || dayIndex >= len(p.Days) {
			return errors.Wrap(ErrNotFound, "plan day", slog.Int("day_index", dayIndex))
		}
		RebuildDay(p, dayIndex, profile, GenerateOptions{})
		return nil
	})
	if err != nil {
		return Plan{}, errors.Wrap(err, "regenerate day")
	}
	return plan, nil
}

// UpdateDayEquipment switches one day of the latest plan to an explicit
// equipment selection and redraws its exercises against it.
func (s *Service) UpdateDayEquipment(ctx context.Context, dayIndex int, mode EquipmentMode, equipment []string, quiet bool) (Plan, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return Plan{}, errors.Wrap(err, "get profile")
	}

	plan, err := s.repo.plans.UpdateLatest(ctx, func(p *Plan) error {
		if dayIndex < 0 || dayIndex >= len(p.Days) {
			return errors.Wrap(ErrNotFound, "plan day", slog.Int("day_index", dayIndex))
		}
		day := &p.Days[dayIndex]
		day.Mode = mode
		day.Quiet = quiet
		day.EquipmentList = equipment
		RebuildDay(p, dayIndex, profile, GenerateOptions{})
		return nil
	})
	if err != nil {
		return Plan{}, errors.Wrap(err, "update day equipment")
	}
	return plan, nil
}

// DescribeExercise returns a description for one exercise of the latest
// plan's pool, generating one when the catalog has none and a describer is
// configured.
func (s *Service) DescribeExercise(ctx context.Context, exerciseID string) (catalog.Exercise, error) {
	exercise, err := s.findExercise(ctx, exerciseID)
	if err != nil {
		return catalog.Exercise{}, err
	}
	if exercise.Description != "" || s.describer == nil {
		return exercise, nil
	}

	description, err := s.describer.Describe(ctx, exercise)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "generate exercise description",
			slog.String("exercise_id", exerciseID), errors.SlogError(err))
		return exercise, nil
	}
	exercise.Description = description
	return exercise, nil
}

func (s *Service) findExercise(ctx context.Context, exerciseID string) (catalog.Exercise, error) {
	plan, err := s.repo.plans.Latest(ctx)
	if err == nil {
		for _, exercise := range plan.Pool {
			if exercise.ID == exerciseID {
				return exercise, nil
			}
		}
	} else if !errors.Is(err, ErrNotFound) {
		return catalog.Exercise{}, errors.Wrap(err, "get latest plan")
	}

	for _, exercise := range catalog.StaticFallback() {
		if exercise.ID == exerciseID {
			return exercise, nil
		}
	}
	return catalog.Exercise{}, errors.Wrap(ErrNotFound, "exercise", slog.String("exercise_id", exerciseID))
}
