package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/testhelpers"
)

func newCatalogAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func writeExercises(t *testing.T, w http.ResponseWriter, exercises []catalog.Exercise) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(exercises); err != nil {
		t.Errorf("encode exercises: %v", err)
	}
}

func TestSessionMemoizesBodyParts(t *testing.T) {
	var requests atomic.Int64
	server := newCatalogAPI(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeExercises(t, w, []catalog.Exercise{
			{ID: "ex-1", Name: "push-up", BodyPart: "chest", Target: "pectorals", Equipment: "body weight"},
		})
	})

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	session := catalog.NewSession(catalog.NewClient(server.URL, logger), logger)

	ctx := context.Background()
	first, err := session.FetchBodyPart(ctx, "chest")
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := session.FetchBodyPart(ctx, "chest")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached result mismatch (-first +second):\n%s", diff)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("expected 1 upstream request, got %d", got)
	}
}

func TestClientRetriesOnRateLimit(t *testing.T) {
	var requests atomic.Int64
	server := newCatalogAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeExercises(t, w, []catalog.Exercise{
			{ID: "ex-2", Name: "bodyweight squat", BodyPart: "upper legs", Target: "quads", Equipment: "body weight"},
		})
	})

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	client := catalog.NewClient(server.URL, logger)
	catalog.SetRetryDelayForTesting(client, 0)

	exercises, err := client.FetchBodyPart(context.Background(), "upper legs")
	if err != nil {
		t.Fatalf("fetch after rate limit: %v", err)
	}
	if len(exercises) != 1 || exercises[0].ID != "ex-2" {
		t.Errorf("unexpected exercises: %+v", exercises)
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("expected 2 upstream requests, got %d", got)
	}
}

func TestClientGivesUpAfterRepeatedRateLimits(t *testing.T) {
	var requests atomic.Int64
	server := newCatalogAPI(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	client := catalog.NewClient(server.URL, logger)
	catalog.SetRetryDelayForTesting(client, 0)

	_, err := client.FetchBodyPart(context.Background(), "chest")
	if !errors.Is(err, catalog.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if got := requests.Load(); got != 3 {
		t.Errorf("expected 3 upstream requests, got %d", got)
	}
}

func TestFetchBodyPartsSwallowsFailures(t *testing.T) {
	server := newCatalogAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exercises/bodyPart/chest":
			writeExercises(t, w, []catalog.Exercise{
				{ID: "ex-1", Name: "push-up", BodyPart: "chest", Target: "pectorals", Equipment: "body weight"},
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	session := catalog.NewSession(catalog.NewClient(server.URL, logger), logger)

	pool := session.FetchBodyParts(context.Background(), []string{"chest", "back"})
	if len(pool) != 1 {
		t.Fatalf("expected failing body part to contribute zero records, got pool of %d", len(pool))
	}
	if pool[0].BodyPart != "chest" {
		t.Errorf("unexpected pool entry: %+v", pool[0])
	}
}
