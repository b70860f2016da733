package lol

import (
	"context"
	"net/http"

	"github.com/alnah/go-lolapi/internal/request"
)

// Every tournament-provider call is served from the global host and requires
// the tournament credential.
const tournamentRoot = "/tournament/public/v1"

// Tournament code settings.
const (
	MapSummonersRift   = "SUMMONERS_RIFT"
	MapTwistedTreeline = "TWISTED_TREELINE"
	MapHowlingAbyss    = "HOWLING_ABYSS"

	PickBlind           = "BLIND_PICK"
	PickDraft           = "DRAFT_MODE"
	PickAllRandom       = "ALL_RANDOM"
	PickTournamentDraft = "TOURNAMENT_DRAFT"

	SpectatorNone      = "NONE"
	SpectatorLobbyOnly = "LOBBYONLY"
	SpectatorAll       = "ALL"
)

// SummonerIDParams restricts who may join with a tournament code.
type SummonerIDParams struct {
	Participants []int64 `json:"participants"`
}

// TournamentCodeParameters configures codes created by CreateTournamentCodes.
type TournamentCodeParameters struct {
	AllowedSummonerIDs *SummonerIDParams `json:"allowedSummonerIds,omitempty"`
	MapType            string            `json:"mapType"`
	Metadata           string            `json:"metadata,omitempty"`
	PickType           string            `json:"pickType"`
	SpectatorType      string            `json:"spectatorType"`
	TeamSize           int               `json:"teamSize"`
}

// TournamentCodeUpdateParameters changes an existing code. Empty fields are
// left as they are.
type TournamentCodeUpdateParameters struct {
	// AllowedParticipants is a comma-separated list of summoner ids.
	AllowedParticipants string `json:"allowedParticipants,omitempty"`
	MapType             string `json:"mapType,omitempty"`
	PickType            string `json:"pickType,omitempty"`
	SpectatorType       string `json:"spectatorType,omitempty"`
}

// TournamentCode is a code's current settings.
type TournamentCode struct {
	Code         string  `json:"code"`
	ID           int64   `json:"id"`
	LobbyName    string  `json:"lobbyName"`
	Map          string  `json:"map"`
	MetaData     string  `json:"metaData"`
	Participants []int64 `json:"participants"`
	Password     string  `json:"password"`
	PickType     string  `json:"pickType"`
	ProviderID   int64   `json:"providerId"`
	Region       string  `json:"region"`
	Spectators   string  `json:"spectators"`
	TeamSize     int     `json:"teamSize"`
	TournamentID int64   `json:"tournamentId"`
}

// LobbyEvent is something that happened in a tournament lobby.
type LobbyEvent struct {
	EventType  string `json:"eventType"`
	SummonerID string `json:"summonerId"`
	Timestamp  string `json:"timestamp"`
}

// LobbyEventWrapper is the response of LobbyEvents.
type LobbyEventWrapper struct {
	EventList []LobbyEvent `json:"eventList"`
}

// ProviderRegistrationParameters registers a tournament provider.
type ProviderRegistrationParameters struct {
	// Region is the upper-case region code, such as "NA".
	Region string `json:"region"`
	// URL receives game results by callback.
	URL string `json:"url"`
}

// TournamentRegistrationParameters registers a tournament.
type TournamentRegistrationParameters struct {
	Name       string `json:"name,omitempty"`
	ProviderID int64  `json:"providerId"`
}

// tournamentEndpoint describes a tournament-provider call.
func tournamentEndpoint(method, rest string, params request.Params, body any) request.Endpoint {
	return request.Endpoint{
		Method:     method,
		Scope:      request.Global,
		Path:       tournamentRoot + rest,
		Params:     params,
		Body:       body,
		Tournament: true,
	}
}

// CreateTournamentCodes creates count codes for a tournament.
func (c *Client) CreateTournamentCodes(ctx context.Context, tournamentID int64, count int, params TournamentCodeParameters) ([]string, error) {
	e := tournamentEndpoint(http.MethodPost, "/code",
		request.Params{"tournamentId": tournamentID, "count": optInt(count)}, params)
	return do[[]string](ctx, c, e)
}

// TournamentCode returns a code's settings.
func (c *Client) TournamentCode(ctx context.Context, code string) (TournamentCode, error) {
	return do[TournamentCode](ctx, c, tournamentEndpoint(http.MethodGet, "/code/"+segment(code), nil, nil))
}

// UpdateTournamentCode changes a code's settings. The server answers with an
// empty body.
func (c *Client) UpdateTournamentCode(ctx context.Context, code string, params TournamentCodeUpdateParameters) error {
	return c.send(ctx, tournamentEndpoint(http.MethodPut, "/code/"+segment(code), nil, params), nil)
}

// LobbyEvents returns the lobby events recorded for a code.
func (c *Client) LobbyEvents(ctx context.Context, code string) (LobbyEventWrapper, error) {
	return do[LobbyEventWrapper](ctx, c, tournamentEndpoint(http.MethodGet, "/lobby/events/by-code/"+segment(code), nil, nil))
}

// RegisterProvider registers a tournament provider and returns its id.
func (c *Client) RegisterProvider(ctx context.Context, params ProviderRegistrationParameters) (int64, error) {
	return do[int64](ctx, c, tournamentEndpoint(http.MethodPost, "/provider", nil, params))
}

// RegisterTournament registers a tournament and returns its id.
func (c *Client) RegisterTournament(ctx context.Context, params TournamentRegistrationParameters) (int64, error) {
	return do[int64](ctx, c, tournamentEndpoint(http.MethodPost, "/tournament", nil, params))
}
