package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-lolapi/lol"
	"github.com/alnah/go-lolapi/region"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const fakerID = 42

func fakerLookup(context.Context, region.Region, ...string) (map[string]lol.Summoner, error) {
	return map[string]lol.Summoner{"faker": {ID: fakerID, Name: "Faker"}}, nil
}

func threeMatches(_ context.Context, _ region.Region, _ int64, _ lol.MatchListOptions) (lol.MatchList, error) {
	return lol.MatchList{
		Matches: []lol.MatchReference{
			{MatchID: 1, Champion: 7, Queue: lol.QueueRankedSolo5x5, Timestamp: 1451606400000},
			{MatchID: 2, Champion: 7, Queue: lol.QueueRankedSolo5x5, Timestamp: 1451610000000},
			{MatchID: 3, Champion: 9, Queue: lol.QueueRankedSolo5x5, Timestamp: 1451613600000},
		},
		TotalGames: 3,
	}, nil
}

// detailFor returns a match in which summonerID played as participant 1.
func detailFor(matchID, summonerID int64, won bool) lol.MatchDetail {
	return lol.MatchDetail{
		MatchID:       matchID,
		MatchDuration: 1865,
		ParticipantIdentities: []lol.ParticipantIdentity{
			{ParticipantID: 1, Player: &lol.MatchPlayer{SummonerID: summonerID}},
			{ParticipantID: 2, Player: &lol.MatchPlayer{SummonerID: 7}},
		},
		Participants: []lol.MatchParticipant{
			{ParticipantID: 2, Stats: lol.ParticipantStats{Winner: !won, Kills: 1}},
			{ParticipantID: 1, Stats: lol.ParticipantStats{Winner: won, Kills: 5, Deaths: 2, Assists: 10}},
		},
	}
}

// ---------------------------------------------------------------------------
// Tests for runMatches
// ---------------------------------------------------------------------------

func TestRunMatches_PrintsEveryMatch(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	mocks.api.SummonersByNameFunc = fakerLookup
	var gotOpts lol.MatchListOptions
	mocks.api.MatchListFunc = func(ctx context.Context, r region.Region, id int64, opts lol.MatchListOptions) (lol.MatchList, error) {
		if id != fakerID {
			t.Errorf("MatchList summoner = %d, want %d", id, fakerID)
		}
		gotOpts = opts
		return threeMatches(ctx, r, id, opts)
	}
	mocks.api.MatchFunc = func(_ context.Context, _ region.Region, id int64, timeline bool) (lol.MatchDetail, error) {
		if timeline {
			t.Error("matches should not request timelines")
		}
		return detailFor(id, fakerID, id != 2), nil
	}

	opts := MatchesOptions{limit: 3, queues: []string{lol.QueueRankedSolo5x5}}
	if err := RunMatches(context.Background(), env, &Globals{}, "Faker", opts); err != nil {
		t.Fatalf("RunMatches() unexpected error: %v", err)
	}

	if gotOpts.BeginIndex == nil || *gotOpts.BeginIndex != 0 || gotOpts.EndIndex == nil || *gotOpts.EndIndex != 3 {
		t.Errorf("MatchList index range = %v..%v, want 0..3", gotOpts.BeginIndex, gotOpts.EndIndex)
	}
	if len(gotOpts.RankedQueues) != 1 || gotOpts.RankedQueues[0] != lol.QueueRankedSolo5x5 {
		t.Errorf("MatchList queues = %v", gotOpts.RankedQueues)
	}
	if got := mocks.api.CallCount("Match"); got != 3 {
		t.Errorf("Match called %d times, want 3", got)
	}

	out := mocks.stdout.String()
	for _, want := range []string{"2016-01-01 00:00", "31:05", "5/2/10", "Win", "Loss"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("output has %d lines, want header + 3:\n%s", lines, out)
	}
}

func TestRunMatches_InvalidLimit(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{0, -1, maxMatchLimit + 1} {
		env, mocks := testEnv()
		err := RunMatches(context.Background(), env, &Globals{}, "Faker", MatchesOptions{limit: limit})
		if !errors.Is(err, ErrInvalidLimit) {
			t.Errorf("limit %d: error = %v, want ErrInvalidLimit", limit, err)
		}
		if mocks.factory.Calls() != 0 {
			t.Errorf("limit %d: client should not be created", limit)
		}
	}
}

func TestRunMatches_NoMatches(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	mocks.api.SummonersByNameFunc = fakerLookup

	if err := RunMatches(context.Background(), env, &Globals{}, "Faker", MatchesOptions{limit: 5}); err != nil {
		t.Fatalf("RunMatches() unexpected error: %v", err)
	}
	if !strings.Contains(mocks.stderr.String(), "No matches found") {
		t.Errorf("stderr = %q, want 'No matches found'", mocks.stderr.String())
	}
	if mocks.stdout.String() != "" {
		t.Errorf("stdout should be empty, got %q", mocks.stdout.String())
	}
}

func TestRunMatches_UnknownSummoner(t *testing.T) {
	t.Parallel()

	env, _ := testEnv()

	err := RunMatches(context.Background(), env, &Globals{}, "Nobody", MatchesOptions{limit: 5})
	if !errors.Is(err, ErrSummonerNotFound) {
		t.Errorf("RunMatches() error = %v, want ErrSummonerNotFound", err)
	}
}

func TestRunMatches_InterruptKeepsFetchedMatches(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	mocks.api.SummonersByNameFunc = fakerLookup
	mocks.api.MatchListFunc = threeMatches
	mocks.api.MatchFunc = func(ctx context.Context, _ region.Region, id int64, _ bool) (lol.MatchDetail, error) {
		if id == 2 {
			mocks.interrupt.Interrupt()
			<-ctx.Done()
			return lol.MatchDetail{}, ctx.Err()
		}
		return detailFor(id, fakerID, true), nil
	}

	if err := RunMatches(context.Background(), env, &Globals{}, "Faker", MatchesOptions{limit: 3}); err != nil {
		t.Fatalf("RunMatches() unexpected error: %v", err)
	}

	if got := mocks.api.CallCount("Match"); got != 2 {
		t.Errorf("Match called %d times, want 2", got)
	}
	if !strings.Contains(mocks.stderr.String(), "Stopped after 1 of 3 matches") {
		t.Errorf("stderr = %q, want stop notice", mocks.stderr.String())
	}
	if lines := strings.Count(mocks.stdout.String(), "\n"); lines != 2 {
		t.Errorf("output has %d lines, want header + 1:\n%s", lines, mocks.stdout.String())
	}
}

func TestRunMatches_InterruptBeforeFirstMatchCancels(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	mocks.api.SummonersByNameFunc = fakerLookup
	mocks.api.MatchListFunc = threeMatches
	mocks.api.MatchFunc = func(ctx context.Context, _ region.Region, _ int64, _ bool) (lol.MatchDetail, error) {
		mocks.interrupt.Interrupt()
		<-ctx.Done()
		return lol.MatchDetail{}, ctx.Err()
	}

	err := RunMatches(context.Background(), env, &Globals{}, "Faker", MatchesOptions{limit: 3})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunMatches() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// Tests for newMatchRow
// ---------------------------------------------------------------------------

func TestNewMatchRow_HiddenIdentities(t *testing.T) {
	t.Parallel()

	d := detailFor(1, fakerID, true)
	for i := range d.ParticipantIdentities {
		d.ParticipantIdentities[i].Player = nil
	}

	r := NewMatchRow(lol.MatchReference{MatchID: 1, Champion: 7}, d, fakerID)
	if r.outcome != "?" || r.score != "?" {
		t.Errorf("row = %+v, want unknown outcome and score", r)
	}
	if r.champion != 7 || r.duration != 1865 {
		t.Errorf("row = %+v, want champion and duration from inputs", r)
	}
}

func TestNewMatchRow_FindsParticipantByIdentity(t *testing.T) {
	t.Parallel()

	r := NewMatchRow(lol.MatchReference{}, detailFor(1, fakerID, false), fakerID)
	if r.outcome != "Loss" || r.score != "5/2/10" {
		t.Errorf("row = %+v, want Loss 5/2/10", r)
	}
}
