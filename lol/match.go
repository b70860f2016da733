package lol

import (
	"context"
	"strconv"
	"time"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

const matchVersion = "v2.2"

// MatchPlayer identifies the account behind a match participant.
type MatchPlayer struct {
	MatchHistoryURI string `json:"matchHistoryUri"`
	ProfileIcon     int    `json:"profileIcon"`
	SummonerID      int64  `json:"summonerId"`
	SummonerName    string `json:"summonerName"`
}

// ParticipantIdentity maps a participant id to a player. Player is nil for
// matches whose identities are not public.
type ParticipantIdentity struct {
	ParticipantID int          `json:"participantId"`
	Player        *MatchPlayer `json:"player,omitempty"`
}

// ParticipantStats are one participant's end-of-game statistics.
type ParticipantStats struct {
	Assists                     int64 `json:"assists"`
	ChampLevel                  int64 `json:"champLevel"`
	Deaths                      int64 `json:"deaths"`
	GoldEarned                  int64 `json:"goldEarned"`
	GoldSpent                   int64 `json:"goldSpent"`
	Item0                       int64 `json:"item0"`
	Item1                       int64 `json:"item1"`
	Item2                       int64 `json:"item2"`
	Item3                       int64 `json:"item3"`
	Item4                       int64 `json:"item4"`
	Item5                       int64 `json:"item5"`
	Item6                       int64 `json:"item6"`
	Kills                       int64 `json:"kills"`
	MinionsKilled               int64 `json:"minionsKilled"`
	NeutralMinionsKilled        int64 `json:"neutralMinionsKilled"`
	TotalDamageDealtToChampions int64 `json:"totalDamageDealtToChampions"`
	VisionWardsBoughtInGame     int64 `json:"visionWardsBoughtInGame"`
	WardsPlaced                 int64 `json:"wardsPlaced"`
	Winner                      bool  `json:"winner"`
}

// MatchParticipant is one player's side of a match.
type MatchParticipant struct {
	ChampionID                int64            `json:"championId"`
	HighestAchievedSeasonTier string           `json:"highestAchievedSeasonTier"`
	ParticipantID             int              `json:"participantId"`
	Spell1ID                  int64            `json:"spell1Id"`
	Spell2ID                  int64            `json:"spell2Id"`
	Stats                     ParticipantStats `json:"stats"`
	TeamID                    int              `json:"teamId"`
}

// MatchTeam is one team's side of a match.
type MatchTeam struct {
	Bans                 []BannedChampion `json:"bans"`
	BaronKills           int              `json:"baronKills"`
	DragonKills          int              `json:"dragonKills"`
	FirstBaron           bool             `json:"firstBaron"`
	FirstBlood           bool             `json:"firstBlood"`
	FirstDragon          bool             `json:"firstDragon"`
	FirstInhibitor       bool             `json:"firstInhibitor"`
	FirstTower           bool             `json:"firstTower"`
	InhibitorKills       int              `json:"inhibitorKills"`
	RiftHeraldKills      int              `json:"riftHeraldKills"`
	TeamID               int              `json:"teamId"`
	TowerKills           int              `json:"towerKills"`
	VilemawKills         int              `json:"vilemawKills"`
	Winner               bool             `json:"winner"`
	DominionVictoryScore int64            `json:"dominionVictoryScore"`
}

// Position is a point on the map.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ParticipantFrame is one participant's state at a timeline frame.
type ParticipantFrame struct {
	CurrentGold         int       `json:"currentGold"`
	JungleMinionsKilled int       `json:"jungleMinionsKilled"`
	Level               int       `json:"level"`
	MinionsKilled       int       `json:"minionsKilled"`
	ParticipantID       int       `json:"participantId"`
	Position            *Position `json:"position,omitempty"`
	TotalGold           int       `json:"totalGold"`
	XP                  int       `json:"xp"`
}

// Event is something that happened during a timeline frame. Which fields are
// set depends on EventType.
type Event struct {
	AssistingParticipantIDs []int     `json:"assistingParticipantIds,omitempty"`
	BuildingType            string    `json:"buildingType,omitempty"`
	CreatorID               int       `json:"creatorId,omitempty"`
	EventType               string    `json:"eventType"`
	ItemID                  int64     `json:"itemId,omitempty"`
	KillerID                int       `json:"killerId,omitempty"`
	LaneType                string    `json:"laneType,omitempty"`
	MonsterType             string    `json:"monsterType,omitempty"`
	ParticipantID           int       `json:"participantId,omitempty"`
	Position                *Position `json:"position,omitempty"`
	SkillSlot               int       `json:"skillSlot,omitempty"`
	TeamID                  int       `json:"teamId,omitempty"`
	Timestamp               int64     `json:"timestamp"`
	VictimID                int       `json:"victimId,omitempty"`
	WardType                string    `json:"wardType,omitempty"`
}

// Frame is a snapshot of a match at a point in time.
type Frame struct {
	Events            []Event                     `json:"events"`
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Timestamp         int64                       `json:"timestamp"`
}

// Timeline is the frame-by-frame history of a match.
type Timeline struct {
	FrameInterval int64   `json:"frameInterval"`
	Frames        []Frame `json:"frames"`
}

// MatchDetail is a finished match.
type MatchDetail struct {
	MapID                 int                   `json:"mapId"`
	MatchCreation         int64                 `json:"matchCreation"`
	MatchDuration         int64                 `json:"matchDuration"`
	MatchID               int64                 `json:"matchId"`
	MatchMode             string                `json:"matchMode"`
	MatchType             string                `json:"matchType"`
	MatchVersion          string                `json:"matchVersion"`
	ParticipantIdentities []ParticipantIdentity `json:"participantIdentities"`
	Participants          []MatchParticipant    `json:"participants"`
	PlatformID            string                `json:"platformId"`
	QueueType             string                `json:"queueType"`
	Region                string                `json:"region"`
	Season                string                `json:"season"`
	Teams                 []MatchTeam           `json:"teams"`
	// Timeline is set only when requested.
	Timeline *Timeline `json:"timeline,omitempty"`
}

// MatchReference is one entry of a match list.
type MatchReference struct {
	Champion   int64  `json:"champion"`
	Lane       string `json:"lane"`
	MatchID    int64  `json:"matchId"`
	PlatformID string `json:"platformId"`
	Queue      string `json:"queue"`
	Region     string `json:"region"`
	Role       string `json:"role"`
	Season     string `json:"season"`
	Timestamp  int64  `json:"timestamp"`
}

// MatchList is the response of MatchList.
type MatchList struct {
	EndIndex   int              `json:"endIndex"`
	Matches    []MatchReference `json:"matches"`
	StartIndex int              `json:"startIndex"`
	TotalGames int              `json:"totalGames"`
}

// MatchListOptions filters a match list. Zero values are left out of the
// request.
type MatchListOptions struct {
	ChampionIDs  []int64
	RankedQueues []string
	Seasons      []string
	BeginTime    time.Time
	EndTime      time.Time
	// BeginIndex and EndIndex page through the list; nil means unset.
	BeginIndex *int
	EndIndex   *int
}

func (o MatchListOptions) params() request.Params {
	p := request.Params{
		"rankedQueues": optStrings(o.RankedQueues),
		"seasons":      optStrings(o.Seasons),
		"beginTime":    optMillis(o.BeginTime),
		"endTime":      optMillis(o.EndTime),
		"beginIndex":   o.BeginIndex,
		"endIndex":     o.EndIndex,
	}
	if len(o.ChampionIDs) > 0 {
		p["championIds"] = o.ChampionIDs
	}
	return p
}

// Match returns a finished match, with its timeline when includeTimeline is set.
func (c *Client) Match(ctx context.Context, r region.Region, matchID int64, includeTimeline bool) (MatchDetail, error) {
	e := regional(r, matchVersion, "/match/"+strconv.FormatInt(matchID, 10),
		request.Params{"includeTimeline": includeTimeline})
	return do[MatchDetail](ctx, c, e)
}

// MatchForTournament returns a match played with a tournament code. It
// requires the tournament credential.
func (c *Client) MatchForTournament(ctx context.Context, r region.Region, matchID int64, tournamentCode string, includeTimeline bool) (MatchDetail, error) {
	e := regional(r, matchVersion, "/match/for-tournament/"+strconv.FormatInt(matchID, 10),
		request.Params{"tournamentCode": optString(tournamentCode), "includeTimeline": includeTimeline})
	e.Tournament = true
	return do[MatchDetail](ctx, c, e)
}

// MatchIDsByTournament returns the ids of matches played with a tournament
// code. It requires the tournament credential.
func (c *Client) MatchIDsByTournament(ctx context.Context, r region.Region, tournamentCode string) ([]int64, error) {
	e := regional(r, matchVersion, "/match/by-tournament/"+segment(tournamentCode)+"/ids", nil)
	e.Tournament = true
	return do[[]int64](ctx, c, e)
}

// MatchList returns a summoner's ranked match history.
func (c *Client) MatchList(ctx context.Context, r region.Region, summonerID int64, opts MatchListOptions) (MatchList, error) {
	e := regional(r, matchVersion, "/matchlist/by-summoner/"+strconv.FormatInt(summonerID, 10), opts.params())
	return do[MatchList](ctx, c, e)
}
