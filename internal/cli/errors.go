package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrAPIKeyMissing indicates neither RIOT_API_KEY nor a key file is configured.
	ErrAPIKeyMissing = errors.New("RIOT_API_KEY environment variable not set and no key-file configured")

	// ErrSummonerNotFound indicates a by-name lookup returned no match for a name.
	ErrSummonerNotFound = errors.New("summoner not found")

	// ErrInvalidLimit indicates a --limit outside the accepted range.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrUnknownConfigKey indicates a config key the CLI does not support.
	ErrUnknownConfigKey = errors.New("unknown config key")
)
