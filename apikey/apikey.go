// Package apikey holds the credentials used to authenticate API calls.
//
// A Keys value carries a general-purpose credential and, optionally, a
// credential authorized for the tournament endpoints. Both are immutable:
// configure them once, hand them to the client, and share freely between
// goroutines.
package apikey

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Errors returned while loading or selecting credentials.
var (
	// ErrEmptyKey indicates a credential source produced an empty secret.
	ErrEmptyKey = errors.New("api key is empty")

	// ErrEnvNotSet indicates the named environment variable is unset or blank.
	ErrEnvNotSet = errors.New("environment variable not set")

	// ErrNoTournamentKey indicates a tournament endpoint was called without a
	// tournament credential configured. No request is sent.
	ErrNoTournamentKey = errors.New("tournament api key not configured")
)

// Credential is a secret plus its tournament authorization.
type Credential struct {
	value       string
	tournaments bool
}

// NewCredential builds a credential from a literal secret.
func NewCredential(value string, tournaments bool) Credential {
	return Credential{value: value, tournaments: tournaments}
}

// Value returns the secret.
func (c Credential) Value() string {
	return c.value
}

// Tournaments reports whether the credential is authorized for the
// tournament endpoints.
func (c Credential) Tournaments() bool {
	return c.tournaments
}

// IsZero reports whether the credential has no secret.
func (c Credential) IsZero() bool {
	return c.value == ""
}

// String never reveals the secret, so credentials are safe to log.
func (c Credential) String() string {
	if c.value == "" {
		return "<none>"
	}
	return "<redacted>"
}

// credentialFile is the on-disk credential format.
type credentialFile struct {
	Value       string `json:"value" yaml:"value"`
	Tournaments bool   `json:"tournaments" yaml:"tournaments"`
}

// FromFile loads a credential from a JSON object {"value": "...",
// "tournaments": false}. Files ending in .yaml or .yml are read as YAML with
// the same two fields.
func FromFile(path string) (Credential, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		return Credential{}, fmt.Errorf("read key file: %w", err)
	}

	var f credentialFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return Credential{}, fmt.Errorf("parse key file %s: %w", filepath.Base(path), err)
	}

	value := strings.TrimSpace(f.Value)
	if value == "" {
		return Credential{}, fmt.Errorf("key file %s: %w", filepath.Base(path), ErrEmptyKey)
	}
	return NewCredential(value, f.Tournaments), nil
}

// FromEnv loads a credential from the named environment variable. The
// variable holds only the secret; tournament authorization is supplied by the
// caller.
func FromEnv(name string, tournaments bool) (Credential, error) {
	return fromLookup(os.Getenv, name, tournaments)
}

// fromLookup resolves a credential through an injectable getenv.
func fromLookup(getenv func(string) string, name string, tournaments bool) (Credential, error) {
	value := strings.TrimSpace(getenv(name))
	if value == "" {
		return Credential{}, fmt.Errorf("%s: %w", name, ErrEnvNotSet)
	}
	return NewCredential(value, tournaments), nil
}

// Keys is the credential set a client authenticates with.
type Keys struct {
	standard   Credential
	tournament Credential
}

// New builds Keys from a raw general-purpose secret.
func New(value string) Keys {
	return Keys{standard: NewCredential(value, false)}
}

// NewWithCredential builds Keys from a prepared credential.
func NewWithCredential(c Credential) Keys {
	return Keys{standard: c}
}

// WithTournament returns a copy of k whose tournament credential is c. The
// general credential is left untouched. c only serves tournament calls when
// its Tournaments flag is set.
func (k Keys) WithTournament(c Credential) Keys {
	k.tournament = c
	return k
}

// Standard returns the general-purpose credential.
func (k Keys) Standard() Credential {
	return k.standard
}

// Tournament returns the tournament credential, if one is configured and
// authorized for tournament endpoints.
func (k Keys) Tournament() (Credential, bool) {
	if k.tournament.IsZero() || !k.tournament.Tournaments() {
		return Credential{}, false
	}
	return k.tournament, true
}

// ForCall selects the credential for a call. Tournament-scoped calls require
// a tournament credential and fail with ErrNoTournamentKey otherwise.
func (k Keys) ForCall(tournament bool) (Credential, error) {
	if !tournament {
		return k.standard, nil
	}
	c, ok := k.Tournament()
	if !ok {
		return Credential{}, ErrNoTournamentKey
	}
	return c, nil
}
