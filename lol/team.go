package lol

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-lolapi/region"
)

const teamVersion = "v2.4"

// TeamMemberInfo is one member of a team roster.
type TeamMemberInfo struct {
	InviteDate int64  `json:"inviteDate"`
	JoinDate   int64  `json:"joinDate"`
	PlayerID   int64  `json:"playerId"`
	Status     string `json:"status"`
}

// Roster is a team's membership.
type Roster struct {
	MemberList []TeamMemberInfo `json:"memberList"`
	OwnerID    int64            `json:"ownerId"`
}

// MatchHistorySummary is one game in a team's history.
type MatchHistorySummary struct {
	Assists           int    `json:"assists"`
	Date              int64  `json:"date"`
	Deaths            int    `json:"deaths"`
	GameID            int64  `json:"gameId"`
	GameMode          string `json:"gameMode"`
	Invalid           bool   `json:"invalid"`
	Kills             int    `json:"kills"`
	MapID             int    `json:"mapId"`
	OpposingTeamKills int    `json:"opposingTeamKills"`
	OpposingTeamName  string `json:"opposingTeamName"`
	Win               bool   `json:"win"`
}

// TeamStatDetail is a team's record in one queue.
type TeamStatDetail struct {
	AverageGamesPlayed int    `json:"averageGamesPlayed"`
	Losses             int    `json:"losses"`
	TeamStatType       string `json:"teamStatType"`
	Wins               int    `json:"wins"`
}

// Team is a ranked team.
type Team struct {
	CreateDate                    int64                 `json:"createDate"`
	FullID                        string                `json:"fullId"`
	LastGameDate                  int64                 `json:"lastGameDate"`
	LastJoinDate                  int64                 `json:"lastJoinDate"`
	LastJoinedRankedTeamQueueDate int64                 `json:"lastJoinedRankedTeamQueueDate"`
	MatchHistory                  []MatchHistorySummary `json:"matchHistory"`
	ModifyDate                    int64                 `json:"modifyDate"`
	Name                          string                `json:"name"`
	Roster                        Roster                `json:"roster"`
	SecondLastJoinDate            int64                 `json:"secondLastJoinDate"`
	Status                        string                `json:"status"`
	Tag                           string                `json:"tag"`
	TeamStatDetails               []TeamStatDetail      `json:"teamStatDetails"`
	ThirdLastJoinDate             int64                 `json:"thirdLastJoinDate"`
}

// teamList escapes team ids into a single path segment, enforcing the batch
// limit.
func teamList(teamIDs []string) (string, error) {
	if len(teamIDs) == 0 {
		return "", ErrNoIDs
	}
	if len(teamIDs) > maxTeamIDs {
		return "", fmt.Errorf("%w: got %d, max %d", ErrTooManyIDs, len(teamIDs), maxTeamIDs)
	}
	parts := make([]string, len(teamIDs))
	for i, id := range teamIDs {
		parts[i] = segment(id)
	}
	return strings.Join(parts, ","), nil
}

// TeamsBySummoner returns the teams of up to 10 summoners, keyed by summoner id.
func (c *Client) TeamsBySummoner(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string][]Team, error) {
	ids, err := idList(summonerIDs, maxTeamIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string][]Team](ctx, c, regional(r, teamVersion, "/team/by-summoner/"+ids, nil))
}

// Teams returns up to 10 teams, keyed by team id.
func (c *Client) Teams(ctx context.Context, r region.Region, teamIDs ...string) (map[string]Team, error) {
	ids, err := teamList(teamIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string]Team](ctx, c, regional(r, teamVersion, "/team/"+ids, nil))
}
