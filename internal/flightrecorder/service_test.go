package flightrecorder_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/AlvaroMoyaL/fitapp/internal/flightrecorder"
	"github.com/AlvaroMoyaL/fitapp/internal/testhelpers"
)

func newTestService(t *testing.T) (*flightrecorder.Service, string) {
	t.Helper()
	traceDir := t.TempDir()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	service, err := flightrecorder.New(logger, traceDir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return service, traceDir
}

func TestService_StartStop(t *testing.T) {
	service, _ := newTestService(t)

	ctx := t.Context()
	if err := service.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	service.Stop(ctx)
}

func TestService_CaptureSlowRequest(t *testing.T) {
	service, traceDir := newTestService(t)

	ctx := t.Context()
	if err := service.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer service.Stop(ctx)

	service.CaptureSlowRequest(ctx, "GET", "/api/plan", 3*time.Second)

	entries, err := os.ReadDir(traceDir)
	if err != nil {
		t.Fatalf("failed to read trace directory: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected a trace file to be created")
	}

	filename := entries[0].Name()
	if !strings.HasPrefix(filename, "slow-") {
		t.Errorf("expected filename to start with 'slow-', got %s", filename)
	}
	if !strings.HasSuffix(filename, ".trace") {
		t.Errorf("expected filename to end with '.trace', got %s", filename)
	}
}

func TestService_CooldownPreventsCapture(t *testing.T) {
	service, traceDir := newTestService(t)

	ctx := t.Context()
	if err := service.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer service.Stop(ctx)

	service.CaptureSlowRequest(ctx, "GET", "/api/plan", 3*time.Second)
	service.CaptureSlowRequest(ctx, "GET", "/api/plan", 3*time.Second)

	entries, err := os.ReadDir(traceDir)
	if err != nil {
		t.Fatalf("failed to read trace directory: %v", err)
	}
	if len(entries) > 1 {
		t.Error("expected cooldown to prevent rapid successive captures")
	}
}
