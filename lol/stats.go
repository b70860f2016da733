package lol

import (
	"context"
	"strconv"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

const statsVersion = "v1.3"

// Seasons accepted by the stats and matchlist endpoints.
const (
	Season3    = "SEASON3"
	Season2014 = "SEASON2014"
	Season2015 = "SEASON2015"
	Season2016 = "SEASON2016"
)

// AggregatedStats are totals over a set of games. Counters that do not apply
// to a queue stay zero.
type AggregatedStats struct {
	AverageAssists            int `json:"averageAssists"`
	AverageChampionsKilled    int `json:"averageChampionsKilled"`
	AverageNumDeaths          int `json:"averageNumDeaths"`
	MaxChampionsKilled        int `json:"maxChampionsKilled"`
	MaxNumDeaths              int `json:"maxNumDeaths"`
	TotalAssists              int `json:"totalAssists"`
	TotalChampionKills        int `json:"totalChampionKills"`
	TotalDamageDealt          int `json:"totalDamageDealt"`
	TotalDamageTaken          int `json:"totalDamageTaken"`
	TotalDeathsPerSession     int `json:"totalDeathsPerSession"`
	TotalGoldEarned           int `json:"totalGoldEarned"`
	TotalMinionKills          int `json:"totalMinionKills"`
	TotalNeutralMinionsKilled int `json:"totalNeutralMinionsKilled"`
	TotalPentaKills           int `json:"totalPentaKills"`
	TotalSessionsLost         int `json:"totalSessionsLost"`
	TotalSessionsPlayed       int `json:"totalSessionsPlayed"`
	TotalSessionsWon          int `json:"totalSessionsWon"`
	TotalTurretsKilled        int `json:"totalTurretsKilled"`
}

// ChampionStats are ranked totals for one champion. ID 0 holds the totals
// over all champions.
type ChampionStats struct {
	ID    int64           `json:"id"`
	Stats AggregatedStats `json:"stats"`
}

// RankedStats is the response of RankedStats.
type RankedStats struct {
	Champions  []ChampionStats `json:"champions"`
	ModifyDate int64           `json:"modifyDate"`
	SummonerID int64           `json:"summonerId"`
}

// PlayerStatsSummary are totals for one queue type.
type PlayerStatsSummary struct {
	AggregatedStats       AggregatedStats `json:"aggregatedStats"`
	Losses                int             `json:"losses"`
	ModifyDate            int64           `json:"modifyDate"`
	PlayerStatSummaryType string          `json:"playerStatSummaryType"`
	Wins                  int             `json:"wins"`
}

// PlayerStatsSummaryList is the response of StatsSummary.
type PlayerStatsSummaryList struct {
	PlayerStatSummaries []PlayerStatsSummary `json:"playerStatSummaries"`
	SummonerID          int64                `json:"summonerId"`
}

// RankedStats returns a summoner's ranked totals per champion. An empty
// season selects the current one.
func (c *Client) RankedStats(ctx context.Context, r region.Region, summonerID int64, season string) (RankedStats, error) {
	e := regional(r, statsVersion, "/stats/by-summoner/"+strconv.FormatInt(summonerID, 10)+"/ranked",
		request.Params{"season": optString(season)})
	return do[RankedStats](ctx, c, e)
}

// StatsSummary returns a summoner's totals per queue type. An empty season
// selects the current one.
func (c *Client) StatsSummary(ctx context.Context, r region.Region, summonerID int64, season string) (PlayerStatsSummaryList, error) {
	e := regional(r, statsVersion, "/stats/by-summoner/"+strconv.FormatInt(summonerID, 10)+"/summary",
		request.Params{"season": optString(season)})
	return do[PlayerStatsSummaryList](ctx, c, e)
}
