package lol

import (
	"context"
	"strconv"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

const (
	gameVersion   = "v1.3"
	observerRoot  = "/observer-mode/rest"
	spectatorPath = observerRoot + "/consumer/getSpectatorGameInfo/"
)

// BannedChampion is a ban made during champion select.
type BannedChampion struct {
	ChampionID int64 `json:"championId"`
	PickTurn   int   `json:"pickTurn"`
	TeamID     int64 `json:"teamId"`
}

// Observer holds the key used to spectate a game.
type Observer struct {
	EncryptionKey string `json:"encryptionKey"`
}

// PageMastery is a mastery and its rank within a mastery page.
type PageMastery struct {
	MasteryID int64 `json:"masteryId"`
	Rank      int   `json:"rank"`
}

// PageRune is a rune and how many copies a rune page holds.
type PageRune struct {
	RuneID int64 `json:"runeId"`
	Count  int   `json:"count"`
}

// CurrentGameParticipant is a player in a game in progress.
type CurrentGameParticipant struct {
	Bot           bool          `json:"bot"`
	ChampionID    int64         `json:"championId"`
	Masteries     []PageMastery `json:"masteries"`
	ProfileIconID int64         `json:"profileIconId"`
	Runes         []PageRune    `json:"runes"`
	Spell1ID      int64         `json:"spell1Id"`
	Spell2ID      int64         `json:"spell2Id"`
	SummonerID    int64         `json:"summonerId"`
	SummonerName  string        `json:"summonerName"`
	TeamID        int64         `json:"teamId"`
}

// CurrentGameInfo is a game in progress.
type CurrentGameInfo struct {
	BannedChampions   []BannedChampion         `json:"bannedChampions"`
	GameID            int64                    `json:"gameId"`
	GameLength        int64                    `json:"gameLength"`
	GameMode          string                   `json:"gameMode"`
	GameQueueConfigID int64                    `json:"gameQueueConfigId"`
	GameStartTime     int64                    `json:"gameStartTime"`
	GameType          string                   `json:"gameType"`
	MapID             int64                    `json:"mapId"`
	Observers         Observer                 `json:"observers"`
	Participants      []CurrentGameParticipant `json:"participants"`
	PlatformID        string                   `json:"platformId"`
}

// FeaturedParticipant is a player in a featured game.
type FeaturedParticipant struct {
	Bot           bool   `json:"bot"`
	ChampionID    int64  `json:"championId"`
	ProfileIconID int64  `json:"profileIconId"`
	Spell1ID      int64  `json:"spell1Id"`
	Spell2ID      int64  `json:"spell2Id"`
	SummonerName  string `json:"summonerName"`
	TeamID        int64  `json:"teamId"`
}

// FeaturedGameInfo is one game on the featured list.
type FeaturedGameInfo struct {
	BannedChampions   []BannedChampion      `json:"bannedChampions"`
	GameID            int64                 `json:"gameId"`
	GameLength        int64                 `json:"gameLength"`
	GameMode          string                `json:"gameMode"`
	GameQueueConfigID int64                 `json:"gameQueueConfigId"`
	GameStartTime     int64                 `json:"gameStartTime"`
	GameType          string                `json:"gameType"`
	MapID             int64                 `json:"mapId"`
	Observers         Observer              `json:"observers"`
	Participants      []FeaturedParticipant `json:"participants"`
	PlatformID        string                `json:"platformId"`
}

// FeaturedGames is the response of FeaturedGames.
type FeaturedGames struct {
	// ClientRefreshInterval is the suggested polling interval in seconds.
	ClientRefreshInterval int64              `json:"clientRefreshInterval"`
	GameList              []FeaturedGameInfo `json:"gameList"`
}

// Player is another summoner in a recent game.
type Player struct {
	ChampionID int64 `json:"championId"`
	SummonerID int64 `json:"summonerId"`
	TeamID     int64 `json:"teamId"`
}

// RawStats is the per-game statistics block of a recent game. Counters the
// server omits stay zero.
type RawStats struct {
	Assists                     int   `json:"assists"`
	ChampionsKilled             int   `json:"championsKilled"`
	NumDeaths                   int   `json:"numDeaths"`
	GoldEarned                  int   `json:"goldEarned"`
	GoldSpent                   int   `json:"goldSpent"`
	Level                       int   `json:"level"`
	MinionsKilled               int   `json:"minionsKilled"`
	NeutralMinionsKilled        int   `json:"neutralMinionsKilled"`
	TimePlayed                  int   `json:"timePlayed"`
	TotalDamageDealtToChampions int   `json:"totalDamageDealtToChampions"`
	WardPlaced                  int   `json:"wardPlaced"`
	Win                         bool  `json:"win"`
	Item0                       int64 `json:"item0"`
	Item1                       int64 `json:"item1"`
	Item2                       int64 `json:"item2"`
	Item3                       int64 `json:"item3"`
	Item4                       int64 `json:"item4"`
	Item5                       int64 `json:"item5"`
	Item6                       int64 `json:"item6"`
}

// Game is one entry of a summoner's recent games.
type Game struct {
	ChampionID    int64    `json:"championId"`
	CreateDate    int64    `json:"createDate"`
	FellowPlayers []Player `json:"fellowPlayers"`
	GameID        int64    `json:"gameId"`
	GameMode      string   `json:"gameMode"`
	GameType      string   `json:"gameType"`
	Invalid       bool     `json:"invalid"`
	IPEarned      int      `json:"ipEarned"`
	Level         int      `json:"level"`
	MapID         int      `json:"mapId"`
	Spell1        int64    `json:"spell1"`
	Spell2        int64    `json:"spell2"`
	Stats         RawStats `json:"stats"`
	SubType       string   `json:"subType"`
	TeamID        int64    `json:"teamId"`
}

// RecentGames is the response of RecentGames.
type RecentGames struct {
	Games      []Game `json:"games"`
	SummonerID int64  `json:"summonerId"`
}

// CurrentGame returns the game a summoner is playing on a platform.
// A summoner not in game yields an error wrapping apierr.ErrNotFound.
func (c *Client) CurrentGame(ctx context.Context, p region.Platform, summonerID int64) (CurrentGameInfo, error) {
	r, err := p.Region()
	if err != nil {
		return CurrentGameInfo{}, err
	}
	e := request.Endpoint{
		Scope: r.String(),
		Path:  spectatorPath + p.String() + "/" + strconv.FormatInt(summonerID, 10),
	}
	return do[CurrentGameInfo](ctx, c, e)
}

// FeaturedGames returns the games currently featured on a region.
func (c *Client) FeaturedGames(ctx context.Context, r region.Region) (FeaturedGames, error) {
	e := request.Endpoint{
		Scope: r.String(),
		Path:  observerRoot + "/featured",
	}
	return do[FeaturedGames](ctx, c, e)
}

// RecentGames returns a summoner's last games.
func (c *Client) RecentGames(ctx context.Context, r region.Region, summonerID int64) (RecentGames, error) {
	e := regional(r, gameVersion, "/game/by-summoner/"+strconv.FormatInt(summonerID, 10)+"/recent", nil)
	return do[RecentGames](ctx, c, e)
}
