package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Config keys.
const (
	KeyRegion  = "region"
	KeyKeyFile = "key-file"
	KeyLocale  = "locale"
)

// Environment variable fallbacks.
const (
	EnvRegion  = "LOLAPI_REGION"
	EnvKeyFile = "LOLAPI_KEY_FILE"
	EnvLocale  = "LOLAPI_LOCALE"
)

// appDir is the directory name under the user config root.
const appDir = "lolapi"

// Errors returned while reading or writing the config file.
var (
	// ErrInvalidKey indicates a key that cannot be stored in a key=value line.
	ErrInvalidKey = errors.New("invalid config key")

	// ErrInvalidSyntax indicates a config line without "=".
	ErrInvalidSyntax = errors.New("invalid config syntax")
)

// Config holds user configuration loaded from ~/.config/lolapi/config.
type Config struct {
	Region  string
	KeyFile string
	Locale  string
}

// Keys returns the supported config keys in display order.
func Keys() []string {
	return []string{KeyRegion, KeyKeyFile, KeyLocale}
}

// IsValidKey reports whether key is a supported config key.
func IsValidKey(key string) bool {
	return slices.Contains(Keys(), key)
}

// dir returns the configuration directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/lolapi.
func dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDir), nil
}

// path returns the full path to the config file.
func path() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config"), nil
}

// Load reads the configuration file and environment variables.
// Precedence: config file values, then environment variable fallbacks.
// Returns an empty Config if the file doesn't exist (not an error).
func Load() (Config, error) {
	var cfg Config

	p, err := path()
	if err != nil {
		return cfg, err
	}

	if data, err := parseFile(p); err == nil {
		cfg.Region = data[KeyRegion]
		cfg.KeyFile = data[KeyKeyFile]
		cfg.Locale = data[KeyLocale]
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	// Environment variable fallback (only if not set in config).
	if cfg.Region == "" {
		cfg.Region = os.Getenv(EnvRegion)
	}
	if cfg.KeyFile == "" {
		cfg.KeyFile = os.Getenv(EnvKeyFile)
	}
	if cfg.Locale == "" {
		cfg.Locale = os.Getenv(EnvLocale)
	}
	cfg.KeyFile = ExpandPath(cfg.KeyFile)

	return cfg, nil
}

// parseFile reads a key=value config file.
// Format: one key=value per line, # comments, empty lines ignored.
func parseFile(p string) (map[string]string, error) {
	f, err := os.Open(p) // #nosec G304 -- config path is constructed from home dir
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w at line %d: %q", ErrInvalidSyntax, lineNum, line)
		}
		data[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return data, nil
}

// Save writes a single key=value to the config file.
// Creates the config directory and file if they don't exist.
// Preserves existing key=value pairs but discards comments.
func Save(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\n\r#") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	p, err := path()
	if err != nil {
		return err
	}

	d := filepath.Dir(p)
	if err := os.MkdirAll(d, 0750); err != nil { // #nosec G301 -- user config dir
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	existing, _ := parseFile(p)
	if existing == nil {
		existing = make(map[string]string)
	}
	existing[key] = value

	return writeFile(p, existing)
}

// writeFile writes the config map to a file, keys sorted.
// The file may reference a credential, so it is private to the user.
func writeFile(p string, data map[string]string) error {
	// #nosec G304 -- path from home dir
	f, err := os.OpenFile(p, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, data[key]); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	return nil
}

// Get reads a single value from the config file.
// Returns empty string if the key doesn't exist.
func Get(key string) (string, error) {
	p, err := path()
	if err != nil {
		return "", err
	}

	data, err := parseFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	return data[key], nil
}

// List returns all config values as a map.
func List() (map[string]string, error) {
	p, err := path()
	if err != nil {
		return nil, err
	}

	data, err := parseFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	return data, nil
}

// ValidKeyFile checks that p names a readable regular file.
// Returns nil if valid, or an error describing the problem.
func ValidKeyFile(p string) error {
	if p == "" {
		return fmt.Errorf("key-file cannot be empty")
	}

	info, err := os.Stat(ExpandPath(p))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("key file does not exist: %s", p)
		}
		return fmt.Errorf("cannot access key file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("key file is a directory: %s", p)
	}

	f, err := os.Open(ExpandPath(p)) // #nosec G304 -- path chosen by the user
	if err != nil {
		return fmt.Errorf("key file is not readable: %w", err)
	}
	_ = f.Close()

	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(p string) string {
	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return p
	}
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, p[2:])
	}
	return p
}

// Dir returns the configuration directory path (exported for testing).
func Dir() (string, error) {
	return dir()
}

// ParseFile reads a key=value config file (exported for testing).
func ParseFile(p string) (map[string]string, error) {
	return parseFile(p)
}
