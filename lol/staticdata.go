package lol

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

const staticDataVersion = "v1.2"

// StaticDataOptions selects the localization, patch and detail level of
// static data. Zero values are left out of the request so the server applies
// its defaults: the region's default locale, the latest version and a
// minimal data set.
type StaticDataOptions struct {
	// Locale such as "en_US".
	Locale string
	// Version is a patch as listed by Versions.
	Version string
	// DataByID keys list results by numeric id instead of by name.
	DataByID bool
	// Data names the extra fields to include, or "all".
	Data []string
}

// params encodes o. dataParam is the endpoint-specific name of the Data list
// (champData, itemListData, ...); "" means the endpoint takes none.
func (o StaticDataOptions) params(dataParam string, list bool) request.Params {
	p := request.Params{
		"locale":  optString(o.Locale),
		"version": optString(o.Version),
	}
	if list && o.DataByID {
		p["dataById"] = true
	}
	if dataParam != "" {
		p[dataParam] = optStrings(o.Data)
	}
	return p
}

// staticEndpoint describes a static data call. Static data is served from the
// global host for every region.
func staticEndpoint(r region.Region, rest string, params request.Params) (request.Endpoint, error) {
	if r.IsZero() {
		return request.Endpoint{}, region.ErrUnknownRegion
	}
	return request.Endpoint{
		Scope:  request.Global,
		Path:   "/api/lol/static-data/" + r.String() + "/" + staticDataVersion + rest,
		Params: params,
	}, nil
}

// staticGet runs a static data call and decodes the result into a T.
func staticGet[T any](ctx context.Context, c *Client, r region.Region, rest string, params request.Params) (T, error) {
	e, err := staticEndpoint(r, rest, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return do[T](ctx, c, e)
}

// Image locates a sprite or icon on the data dragon CDN.
type Image struct {
	Full   string `json:"full"`
	Group  string `json:"group"`
	Sprite string `json:"sprite"`
	H      int    `json:"h"`
	W      int    `json:"w"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// Info rates a champion's play style from 0 to 10.
type Info struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Difficulty int `json:"difficulty"`
	Magic      int `json:"magic"`
}

// Passive is a champion's innate ability.
type Passive struct {
	Description          string `json:"description"`
	Image                Image  `json:"image"`
	Name                 string `json:"name"`
	SanitizedDescription string `json:"sanitizedDescription"`
}

// Skin is a champion skin.
type Skin struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Num  int    `json:"num"`
}

// ChampionSpell is one of a champion's abilities.
type ChampionSpell struct {
	Cooldown             []float64 `json:"cooldown"`
	CooldownBurn         string    `json:"cooldownBurn"`
	Cost                 []int     `json:"cost"`
	CostBurn             string    `json:"costBurn"`
	CostType             string    `json:"costType"`
	Description          string    `json:"description"`
	Image                Image     `json:"image"`
	Key                  string    `json:"key"`
	MaxRank              int       `json:"maxrank"`
	Name                 string    `json:"name"`
	Resource             string    `json:"resource"`
	SanitizedDescription string    `json:"sanitizedDescription"`
	SanitizedTooltip     string    `json:"sanitizedTooltip"`
	Tooltip              string    `json:"tooltip"`
}

// StaticChampion is a champion's game data. Fields outside the minimal set
// are filled only when requested through StaticDataOptions.Data.
type StaticChampion struct {
	AllyTips  []string           `json:"allytips"`
	Blurb     string             `json:"blurb"`
	EnemyTips []string           `json:"enemytips"`
	ID        int64              `json:"id"`
	Image     *Image             `json:"image,omitempty"`
	Info      *Info              `json:"info,omitempty"`
	Key       string             `json:"key"`
	Lore      string             `json:"lore"`
	Name      string             `json:"name"`
	Partype   string             `json:"partype"`
	Passive   *Passive           `json:"passive,omitempty"`
	Skins     []Skin             `json:"skins"`
	Spells    []ChampionSpell    `json:"spells"`
	Stats     map[string]float64 `json:"stats"`
	Tags      []string           `json:"tags"`
	Title     string             `json:"title"`
}

// StaticChampionList is the response of StaticChampions.
type StaticChampionList struct {
	Data    map[string]StaticChampion `json:"data"`
	Format  string                    `json:"format"`
	Keys    map[string]string         `json:"keys"`
	Type    string                    `json:"type"`
	Version string                    `json:"version"`
}

// Gold is an item's price.
type Gold struct {
	Base        int  `json:"base"`
	Purchasable bool `json:"purchasable"`
	Sell        int  `json:"sell"`
	Total       int  `json:"total"`
}

// Item is an item's game data.
type Item struct {
	Depth                int                `json:"depth"`
	Description          string             `json:"description"`
	From                 []string           `json:"from"`
	Gold                 *Gold              `json:"gold,omitempty"`
	ID                   int64              `json:"id"`
	Image                *Image             `json:"image,omitempty"`
	Into                 []string           `json:"into"`
	Name                 string             `json:"name"`
	Plaintext            string             `json:"plaintext"`
	SanitizedDescription string             `json:"sanitizedDescription"`
	Stats                map[string]float64 `json:"stats"`
	Tags                 []string           `json:"tags"`
}

// ItemTree groups item tags under a header.
type ItemTree struct {
	Header string   `json:"header"`
	Tags   []string `json:"tags"`
}

// ItemList is the response of StaticItems.
type ItemList struct {
	Data    map[string]Item `json:"data"`
	Tree    []ItemTree      `json:"tree"`
	Type    string          `json:"type"`
	Version string          `json:"version"`
}

// LanguageStrings maps client string keys to localized text.
type LanguageStrings struct {
	Data    map[string]string `json:"data"`
	Type    string            `json:"type"`
	Version string            `json:"version"`
}

// MapDetails is one map's game data.
type MapDetails struct {
	Image                 *Image  `json:"image,omitempty"`
	MapID                 int64   `json:"mapId"`
	MapName               string  `json:"mapName"`
	UnpurchasableItemList []int64 `json:"unpurchasableItemList"`
}

// MapData is the response of Maps.
type MapData struct {
	Data    map[string]MapDetails `json:"data"`
	Type    string                `json:"type"`
	Version string                `json:"version"`
}

// StaticMastery is a mastery's game data.
type StaticMastery struct {
	Description          []string `json:"description"`
	ID                   int64    `json:"id"`
	Image                *Image   `json:"image,omitempty"`
	MasteryTree          string   `json:"masteryTree"`
	Name                 string   `json:"name"`
	Prereq               string   `json:"prereq"`
	Ranks                int      `json:"ranks"`
	SanitizedDescription []string `json:"sanitizedDescription"`
}

// MasteryTreeItem is a mastery's place in a tree.
type MasteryTreeItem struct {
	MasteryID int64  `json:"masteryId"`
	Prereq    string `json:"prereq"`
}

// MasteryTreeList is one row of a mastery tree. Empty cells are nil.
type MasteryTreeList struct {
	MasteryTreeItems []*MasteryTreeItem `json:"masteryTreeItems"`
}

// MasteryList is the response of Masteries.
type MasteryList struct {
	Data    map[string]StaticMastery     `json:"data"`
	Tree    map[string][]MasteryTreeList `json:"tree"`
	Type    string                       `json:"type"`
	Version string                       `json:"version"`
}

// Realm describes where a region's client assets are hosted.
type Realm struct {
	CDN            string            `json:"cdn"`
	CSS            string            `json:"css"`
	DD             string            `json:"dd"`
	L              string            `json:"l"`
	LG             string            `json:"lg"`
	N              map[string]string `json:"n"`
	ProfileIconMax int               `json:"profileiconmax"`
	Store          string            `json:"store"`
	V              string            `json:"v"`
}

// MetaData classifies a rune.
type MetaData struct {
	IsRune bool   `json:"isRune"`
	Tier   string `json:"tier"`
	Type   string `json:"type"`
}

// StaticRune is a rune's game data.
type StaticRune struct {
	Description          string             `json:"description"`
	ID                   int64              `json:"id"`
	Image                *Image             `json:"image,omitempty"`
	Name                 string             `json:"name"`
	Rune                 MetaData           `json:"rune"`
	SanitizedDescription string             `json:"sanitizedDescription"`
	Stats                map[string]float64 `json:"stats"`
	Tags                 []string           `json:"tags"`
}

// RuneList is the response of Runes.
type RuneList struct {
	Data    map[string]StaticRune `json:"data"`
	Type    string                `json:"type"`
	Version string                `json:"version"`
}

// SummonerSpell is a summoner spell's game data. Range is either the string
// "self" or a list of ranges per rank, so it is left undecoded.
type SummonerSpell struct {
	Cooldown             []float64       `json:"cooldown"`
	CooldownBurn         string          `json:"cooldownBurn"`
	Description          string          `json:"description"`
	ID                   int64           `json:"id"`
	Image                *Image          `json:"image,omitempty"`
	Key                  string          `json:"key"`
	MaxRank              int             `json:"maxrank"`
	Modes                []string        `json:"modes"`
	Name                 string          `json:"name"`
	Range                json.RawMessage `json:"range,omitempty"`
	SanitizedDescription string          `json:"sanitizedDescription"`
	SummonerLevel        int             `json:"summonerLevel"`
	Tooltip              string          `json:"tooltip"`
}

// SummonerSpellList is the response of SummonerSpells.
type SummonerSpellList struct {
	Data    map[string]SummonerSpell `json:"data"`
	Type    string                   `json:"type"`
	Version string                   `json:"version"`
}

// StaticChampions lists champion game data.
func (c *Client) StaticChampions(ctx context.Context, r region.Region, opts StaticDataOptions) (StaticChampionList, error) {
	return staticGet[StaticChampionList](ctx, c, r, "/champion", opts.params("champData", true))
}

// StaticChampion returns one champion's game data.
func (c *Client) StaticChampion(ctx context.Context, r region.Region, id int64, opts StaticDataOptions) (StaticChampion, error) {
	return staticGet[StaticChampion](ctx, c, r, "/champion/"+strconv.FormatInt(id, 10), opts.params("champData", false))
}

// StaticItems lists item game data.
func (c *Client) StaticItems(ctx context.Context, r region.Region, opts StaticDataOptions) (ItemList, error) {
	return staticGet[ItemList](ctx, c, r, "/item", opts.params("itemListData", false))
}

// StaticItem returns one item's game data.
func (c *Client) StaticItem(ctx context.Context, r region.Region, id int64, opts StaticDataOptions) (Item, error) {
	return staticGet[Item](ctx, c, r, "/item/"+strconv.FormatInt(id, 10), opts.params("itemData", false))
}

// LanguageStrings returns the client's localized strings.
func (c *Client) LanguageStrings(ctx context.Context, r region.Region, opts StaticDataOptions) (LanguageStrings, error) {
	return staticGet[LanguageStrings](ctx, c, r, "/language-strings", opts.params("", false))
}

// Languages lists the locales supported by a region.
func (c *Client) Languages(ctx context.Context, r region.Region) ([]string, error) {
	return staticGet[[]string](ctx, c, r, "/languages", nil)
}

// Maps lists map game data.
func (c *Client) Maps(ctx context.Context, r region.Region, opts StaticDataOptions) (MapData, error) {
	return staticGet[MapData](ctx, c, r, "/map", opts.params("", false))
}

// Masteries lists mastery game data.
func (c *Client) Masteries(ctx context.Context, r region.Region, opts StaticDataOptions) (MasteryList, error) {
	return staticGet[MasteryList](ctx, c, r, "/mastery", opts.params("masteryListData", false))
}

// Mastery returns one mastery's game data.
func (c *Client) Mastery(ctx context.Context, r region.Region, id int64, opts StaticDataOptions) (StaticMastery, error) {
	return staticGet[StaticMastery](ctx, c, r, "/mastery/"+strconv.FormatInt(id, 10), opts.params("masteryData", false))
}

// Realm returns where the region's client assets are hosted.
func (c *Client) Realm(ctx context.Context, r region.Region) (Realm, error) {
	return staticGet[Realm](ctx, c, r, "/realm", nil)
}

// Runes lists rune game data.
func (c *Client) Runes(ctx context.Context, r region.Region, opts StaticDataOptions) (RuneList, error) {
	return staticGet[RuneList](ctx, c, r, "/rune", opts.params("runeListData", false))
}

// Rune returns one rune's game data.
func (c *Client) Rune(ctx context.Context, r region.Region, id int64, opts StaticDataOptions) (StaticRune, error) {
	return staticGet[StaticRune](ctx, c, r, "/rune/"+strconv.FormatInt(id, 10), opts.params("runeData", false))
}

// SummonerSpells lists summoner spell game data.
func (c *Client) SummonerSpells(ctx context.Context, r region.Region, opts StaticDataOptions) (SummonerSpellList, error) {
	return staticGet[SummonerSpellList](ctx, c, r, "/summoner-spell", opts.params("spellData", true))
}

// SummonerSpell returns one summoner spell's game data.
func (c *Client) SummonerSpell(ctx context.Context, r region.Region, id int64, opts StaticDataOptions) (SummonerSpell, error) {
	return staticGet[SummonerSpell](ctx, c, r, "/summoner-spell/"+strconv.FormatInt(id, 10), opts.params("spellData", false))
}

// Versions lists the game patches, newest first.
func (c *Client) Versions(ctx context.Context, r region.Region) ([]string, error) {
	return staticGet[[]string](ctx, c, r, "/versions", nil)
}
