package lol

import (
	"context"

	"github.com/alnah/go-lolapi/region"
)

const summonerVersion = "v1.4"

// Summoner is a player account.
type Summoner struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

// Mastery is a mastery and its rank within a summoner's mastery page.
type Mastery struct {
	ID   int64 `json:"id"`
	Rank int   `json:"rank"`
}

// MasteryPage is one of a summoner's mastery pages.
type MasteryPage struct {
	Current   bool      `json:"current"`
	ID        int64     `json:"id"`
	Masteries []Mastery `json:"masteries"`
	Name      string    `json:"name"`
}

// MasteryPages is a summoner's full set of mastery pages.
type MasteryPages struct {
	Pages      []MasteryPage `json:"pages"`
	SummonerID int64         `json:"summonerId"`
}

// RuneSlot is a rune placed in a slot of a rune page.
type RuneSlot struct {
	RuneID     int64 `json:"runeId"`
	RuneSlotID int   `json:"runeSlotId"`
}

// RunePage is one of a summoner's rune pages.
type RunePage struct {
	Current bool       `json:"current"`
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Slots   []RuneSlot `json:"slots"`
}

// RunePages is a summoner's full set of rune pages.
type RunePages struct {
	Pages      []RunePage `json:"pages"`
	SummonerID int64      `json:"summonerId"`
}

// SummonersByName looks up to 40 summoners by name. The result is keyed by
// StandardizeName of each name.
func (c *Client) SummonersByName(ctx context.Context, r region.Region, names ...string) (map[string]Summoner, error) {
	list, err := nameList(names, maxSummonerIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string]Summoner](ctx, c, regional(r, summonerVersion, "/summoner/by-name/"+list, nil))
}

// Summoners looks up to 40 summoners by id, keyed by id.
func (c *Client) Summoners(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string]Summoner, error) {
	ids, err := idList(summonerIDs, maxSummonerIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string]Summoner](ctx, c, regional(r, summonerVersion, "/summoner/"+ids, nil))
}

// SummonerMasteries returns the mastery pages of up to 40 summoners, keyed by id.
func (c *Client) SummonerMasteries(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string]MasteryPages, error) {
	ids, err := idList(summonerIDs, maxSummonerIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string]MasteryPages](ctx, c, regional(r, summonerVersion, "/summoner/"+ids+"/masteries", nil))
}

// SummonerNames returns the names of up to 40 summoners, keyed by id.
func (c *Client) SummonerNames(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string]string, error) {
	ids, err := idList(summonerIDs, maxSummonerIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string]string](ctx, c, regional(r, summonerVersion, "/summoner/"+ids+"/name", nil))
}

// SummonerRunes returns the rune pages of up to 40 summoners, keyed by id.
func (c *Client) SummonerRunes(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string]RunePages, error) {
	ids, err := idList(summonerIDs, maxSummonerIDs)
	if err != nil {
		return nil, err
	}
	return do[map[string]RunePages](ctx, c, regional(r, summonerVersion, "/summoner/"+ids+"/runes", nil))
}
