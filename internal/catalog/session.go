package catalog

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
)

// Session owns the per-body-part fetch cache for one catalog consumer.
// Results are memoized for the session lifetime, concurrent requests for the
// same body part share one in-flight fetch, and at most one fetch runs against
// the remote API at a time.
type Session struct {
	client *Client
	logger *slog.Logger

	group   singleflight.Group
	fetches *semaphore.Weighted

	mu     sync.Mutex
	byPart map[string][]Exercise
}

// NewSession creates a catalog session backed by the given client.
func NewSession(client *Client, logger *slog.Logger) *Session {
	return &Session{
		client:  client,
		logger:  logger,
		group:   singleflight.Group{},
		fetches: semaphore.NewWeighted(1),
		mu:      sync.Mutex{},
		byPart:  make(map[string][]Exercise),
	}
}

// FetchBodyPart returns the exercises for a body part, fetching from the
// remote API on first use and from the session cache afterwards.
func (s *Session) FetchBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error) {
	s.mu.Lock()
	cached, ok := s.byPart[bodyPart]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	result, err, _ := s.group.Do(bodyPart, func() (any, error) {
		if acquireErr := s.fetches.Acquire(ctx, 1); acquireErr != nil {
			return nil, errors.Wrap(acquireErr, "acquire fetch slot")
		}
		defer s.fetches.Release(1)

		exercises, fetchErr := s.client.FetchBodyPart(ctx, bodyPart)
		if fetchErr != nil {
			return nil, fetchErr
		}

		s.mu.Lock()
		s.byPart[bodyPart] = exercises
		s.mu.Unlock()

		return exercises, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetch body part", slog.String("bodyPart", bodyPart))
	}

	exercises, ok := result.([]Exercise)
	if !ok {
		return nil, errors.New("unexpected singleflight result type")
	}
	return exercises, nil
}

// FetchBodyParts aggregates the exercises for several body parts. Failures
// for individual body parts contribute zero records instead of failing the
// whole aggregation.
func (s *Session) FetchBodyParts(ctx context.Context, bodyParts []string) []Exercise {
	var pool []Exercise
	for _, bodyPart := range bodyParts {
		exercises, err := s.FetchBodyPart(ctx, bodyPart)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "skipping body part after fetch failure",
				slog.String("bodyPart", bodyPart), errors.SlogError(err))
			continue
		}
		pool = append(pool, exercises...)
	}
	return pool
}
