package cli

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alnah/go-lolapi/apierr"
	"github.com/alnah/go-lolapi/lol"
	"github.com/alnah/go-lolapi/region"
)

// ---------------------------------------------------------------------------
// Tests for runStatus
// ---------------------------------------------------------------------------

func onlineShard(r region.Region) lol.ShardStatus {
	return lol.ShardStatus{
		Name: strings.ToUpper(r.String()),
		Slug: r.String(),
		Services: []lol.Service{
			{Name: "Game", Status: "online"},
			{Name: "Store", Status: "online", Incidents: []lol.Incident{{Active: true}, {Active: false}}},
		},
	}
}

func TestRunStatus_ReportsUnreachableRegion(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	mocks.api.ShardFunc = func(_ context.Context, r region.Region) (lol.ShardStatus, error) {
		if r == region.EUW {
			return lol.ShardStatus{}, &apierr.APIError{StatusCode: 503}
		}
		return onlineShard(r), nil
	}

	if err := RunStatus(context.Background(), env, &Globals{}, []string{"na", "euw"}); err != nil {
		t.Fatalf("RunStatus() unexpected error: %v", err)
	}

	out := mocks.stdout.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("output has %d lines, want header + 2 services + 1 unreachable:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "na") || !strings.Contains(lines[1], "Game") {
		t.Errorf("line 1 = %q, want na Game", lines[1])
	}
	if !strings.Contains(lines[2], "Store") || !strings.HasSuffix(strings.TrimSpace(lines[2]), "1") {
		t.Errorf("line 2 = %q, want Store with 1 active incident", lines[2])
	}
	if !strings.HasPrefix(lines[3], "euw") || !strings.Contains(lines[3], "unreachable") {
		t.Errorf("line 3 = %q, want euw unreachable", lines[3])
	}
}

func TestRunStatus_AllRegionsByDefault(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	var calls atomic.Int32
	mocks.api.ShardFunc = func(_ context.Context, r region.Region) (lol.ShardStatus, error) {
		calls.Add(1)
		return onlineShard(r), nil
	}

	if err := RunStatus(context.Background(), env, &Globals{}, nil); err != nil {
		t.Fatalf("RunStatus() unexpected error: %v", err)
	}
	if got, want := int(calls.Load()), len(region.Codes()); got != want {
		t.Errorf("Shard called %d times, want %d", got, want)
	}
}

func TestRunStatus_AllFailing(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	mocks.api.ShardFunc = func(context.Context, region.Region) (lol.ShardStatus, error) {
		return lol.ShardStatus{}, &apierr.APIError{StatusCode: 503}
	}

	err := RunStatus(context.Background(), env, &Globals{}, []string{"na", "kr"})
	if !errors.Is(err, apierr.ErrUnavailable) {
		t.Errorf("RunStatus() error = %v, want ErrUnavailable", err)
	}
}

func TestRunStatus_UnknownRegionArgument(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()

	err := RunStatus(context.Background(), env, &Globals{}, []string{"na", "moon"})
	if !errors.Is(err, region.ErrUnknownRegion) {
		t.Errorf("RunStatus() error = %v, want ErrUnknownRegion", err)
	}
	if mocks.factory.Calls() != 0 {
		t.Error("client should not be created for an invalid argument")
	}
}
