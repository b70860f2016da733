package lol

import (
	"context"
	"strconv"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

const (
	championVersion = "v1.2"
	masteryRoot     = "/championmastery/location/"
)

// Champion is a champion's availability on a region.
type Champion struct {
	ID                int64 `json:"id"`
	Active            bool  `json:"active"`
	BotEnabled        bool  `json:"botEnabled"`
	BotMmEnabled      bool  `json:"botMmEnabled"`
	FreeToPlay        bool  `json:"freeToPlay"`
	RankedPlayEnabled bool  `json:"rankedPlayEnabled"`
}

// ChampionList is the response of Champions.
type ChampionList struct {
	Champions []Champion `json:"champions"`
}

// ChampionMastery is a player's progress on one champion.
type ChampionMastery struct {
	PlayerID                     int64 `json:"playerId"`
	ChampionID                   int64 `json:"championId"`
	ChampionLevel                int   `json:"championLevel"`
	ChampionPoints               int   `json:"championPoints"`
	ChampionPointsSinceLastLevel int64 `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int64 `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool  `json:"chestGranted"`
	LastPlayTime                 int64 `json:"lastPlayTime"`
}

// Champions lists every champion's status. With freeToPlay set, only the
// current free rotation is returned.
func (c *Client) Champions(ctx context.Context, r region.Region, freeToPlay bool) (ChampionList, error) {
	e := regional(r, championVersion, "/champion", request.Params{"freeToPlay": freeToPlay})
	return do[ChampionList](ctx, c, e)
}

// Champion returns one champion's status.
func (c *Client) Champion(ctx context.Context, r region.Region, id int64) (Champion, error) {
	e := regional(r, championVersion, "/champion/"+strconv.FormatInt(id, 10), nil)
	return do[Champion](ctx, c, e)
}

// masteryEndpoint describes a champion mastery call. Champion mastery lives
// under the platform id but is served from the platform's region host.
func masteryEndpoint(p region.Platform, playerID int64, rest string, params request.Params) (request.Endpoint, error) {
	r, err := p.Region()
	if err != nil {
		return request.Endpoint{}, err
	}
	return request.Endpoint{
		Scope:  r.String(),
		Path:   masteryRoot + p.String() + "/player/" + strconv.FormatInt(playerID, 10) + rest,
		Params: params,
	}, nil
}

// ChampionMastery returns a player's mastery of one champion.
func (c *Client) ChampionMastery(ctx context.Context, p region.Platform, playerID, championID int64) (ChampionMastery, error) {
	e, err := masteryEndpoint(p, playerID, "/champion/"+strconv.FormatInt(championID, 10), nil)
	if err != nil {
		return ChampionMastery{}, err
	}
	return do[ChampionMastery](ctx, c, e)
}

// ChampionMasteries returns a player's mastery of every champion played.
func (c *Client) ChampionMasteries(ctx context.Context, p region.Platform, playerID int64) ([]ChampionMastery, error) {
	e, err := masteryEndpoint(p, playerID, "/champions", nil)
	if err != nil {
		return nil, err
	}
	return do[[]ChampionMastery](ctx, c, e)
}

// ChampionMasteryScore returns the sum of a player's champion mastery levels.
func (c *Client) ChampionMasteryScore(ctx context.Context, p region.Platform, playerID int64) (int, error) {
	e, err := masteryEndpoint(p, playerID, "/score", nil)
	if err != nil {
		return 0, err
	}
	return do[int](ctx, c, e)
}

// TopChampionMasteries returns a player's highest masteries. A count of zero
// lets the server apply its default of three.
func (c *Client) TopChampionMasteries(ctx context.Context, p region.Platform, playerID int64, count int) ([]ChampionMastery, error) {
	e, err := masteryEndpoint(p, playerID, "/topchampions", request.Params{"count": optInt(count)})
	if err != nil {
		return nil, err
	}
	return do[[]ChampionMastery](ctx, c, e)
}
