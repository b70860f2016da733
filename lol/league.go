package lol

import (
	"context"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

const leagueVersion = "v2.5"

// Ranked queue types accepted by ChallengerLeague and MasterLeague.
const (
	QueueRankedSolo5x5    = "RANKED_SOLO_5x5"
	QueueRankedTeam3x3    = "RANKED_TEAM_3x3"
	QueueRankedTeam5x5    = "RANKED_TEAM_5x5"
	QueueRankedFlexSR     = "RANKED_FLEX_SR"
	QueueRankedFlexTT     = "RANKED_FLEX_TT"
	QueueTeamBuilderDraft = "TEAM_BUILDER_DRAFT_RANKED_5x5"
)

// MiniSeries is a promotion series in progress.
type MiniSeries struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
}

// LeagueEntry is one player or team in a league.
type LeagueEntry struct {
	Division         string      `json:"division"`
	IsFreshBlood     bool        `json:"isFreshBlood"`
	IsHotStreak      bool        `json:"isHotStreak"`
	IsInactive       bool        `json:"isInactive"`
	IsVeteran        bool        `json:"isVeteran"`
	LeaguePoints     int         `json:"leaguePoints"`
	Losses           int         `json:"losses"`
	MiniSeries       *MiniSeries `json:"miniSeries,omitempty"`
	PlayerOrTeamID   string      `json:"playerOrTeamId"`
	PlayerOrTeamName string      `json:"playerOrTeamName"`
	Wins             int         `json:"wins"`
}

// League is a ranked league. For by-summoner and by-team lookups,
// ParticipantID names the entry that was asked for.
type League struct {
	Entries       []LeagueEntry `json:"entries"`
	Name          string        `json:"name"`
	ParticipantID string        `json:"participantId"`
	Queue         string        `json:"queue"`
	Tier          string        `json:"tier"`
}

// LeaguesBySummoner returns the full leagues of up to 10 summoners, keyed by
// summoner id.
func (c *Client) LeaguesBySummoner(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string][]League, error) {
	ids, err := idList(summonerIDs, maxLeagueIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string][]League](ctx, c, regional(r, leagueVersion, "/league/by-summoner/"+ids, nil))
}

// LeagueEntriesBySummoner returns only the summoners' own entries, keyed by
// summoner id.
func (c *Client) LeagueEntriesBySummoner(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string][]League, error) {
	ids, err := idList(summonerIDs, maxLeagueIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string][]League](ctx, c, regional(r, leagueVersion, "/league/by-summoner/"+ids+"/entry", nil))
}

// LeaguesByTeam returns the full leagues of up to 10 teams, keyed by team id.
func (c *Client) LeaguesByTeam(ctx context.Context, r region.Region, teamIDs ...string) (map[string][]League, error) {
	ids, err := teamList(teamIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string][]League](ctx, c, regional(r, leagueVersion, "/league/by-team/"+ids, nil))
}

// LeagueEntriesByTeam returns only the teams' own entries, keyed by team id.
func (c *Client) LeagueEntriesByTeam(ctx context.Context, r region.Region, teamIDs ...string) (map[string][]League, error) {
	ids, err := teamList(teamIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string][]League](ctx, c, regional(r, leagueVersion, "/league/by-team/"+ids+"/entry", nil))
}

// ChallengerLeague returns the challenger tier league for a queue type.
func (c *Client) ChallengerLeague(ctx context.Context, r region.Region, queueType string) (League, error) {
	return do[League](ctx, c, regional(r, leagueVersion, "/league/challenger", request.Params{"type": optString(queueType)}))
}

// MasterLeague returns the master tier league for a queue type.
func (c *Client) MasterLeague(ctx context.Context, r region.Region, queueType string) (League, error) {
	return do[League](ctx, c, regional(r, leagueVersion, "/league/master", request.Params{"type": optString(queueType)}))
}
