package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lolapi/internal/config"
	"github.com/alnah/go-lolapi/internal/locale"
	"github.com/alnah/go-lolapi/region"
)

// configEnvVars maps each config key to its environment fallback.
var configEnvVars = map[string]string{
	config.KeyRegion:  config.EnvRegion,
	config.KeyKeyFile: config.EnvKeyFile,
	config.KeyLocale:  config.EnvLocale,
}

// ConfigCmd creates the config command with subcommands.
// The env parameter provides injectable dependencies for testing.
func ConfigCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage persistent configuration settings.

Configuration is stored in ~/.config/lolapi/config.
Settings can also be overridden via environment variables.

Supported settings:
  region      Default region code (env: LOLAPI_REGION)
  key-file    JSON or YAML file holding the API key (env: LOLAPI_KEY_FILE)
  locale      Static data locale, e.g. en_US (env: LOLAPI_LOCALE)`,
		Example: `  lolapi config set region euw
  lolapi config set key-file ~/.config/lolapi/key.yaml
  lolapi config get region
  lolapi config list`,
	}

	cmd.AddCommand(configSetCmd(env))
	cmd.AddCommand(configGetCmd(env))
	cmd.AddCommand(configListCmd(env))

	return cmd
}

// configSetCmd creates the "config set" subcommand.
func configSetCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Values are validated before they are stored: regions must be known codes,
the key file must be readable and locales must be published ones.`,
		Example: `  lolapi config set region kr
  lolapi config set locale ko_KR`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(env, args[0], args[1])
		},
	}
}

// configGetCmd creates the "config get" subcommand.
func configGetCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value.

Prints the value to stdout, or nothing if not set.`,
		Example: `  lolapi config get region`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(env, args[0])
		},
	}
}

// configListCmd creates the "config list" subcommand.
func configListCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all configuration values.

Shows both values from the config file and environment variable overrides.`,
		Example: `  lolapi config list`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigList(env)
		},
	}
}

// runConfigSet handles the "config set" command.
func runConfigSet(env *Env, key, value string) error {
	if !config.IsValidKey(key) {
		return fmt.Errorf("%w %q (valid keys: %v)", ErrUnknownConfigKey, key, config.Keys())
	}

	switch key {
	case config.KeyRegion:
		r, err := region.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid region: %w", err)
		}
		value = r.String()
	case config.KeyKeyFile:
		expanded := config.ExpandPath(value)
		if err := config.ValidKeyFile(expanded); err != nil {
			return fmt.Errorf("invalid key-file: %w", err)
		}
		value = expanded
	case config.KeyLocale:
		if err := locale.Validate(value); err != nil {
			return err
		}
		value = locale.Normalize(value)
	}

	if err := config.Save(key, value); err != nil {
		return err
	}

	fmt.Fprintf(env.Stderr, "Set %s = %s\n", key, value)
	return nil
}

// runConfigGet handles the "config get" command.
func runConfigGet(env *Env, key string) error {
	if !config.IsValidKey(key) {
		return fmt.Errorf("%w %q (valid keys: %v)", ErrUnknownConfigKey, key, config.Keys())
	}

	value, err := config.Get(key)
	if err != nil {
		return err
	}

	if value == "" {
		value = env.Getenv(configEnvVars[key])
	}

	if value != "" {
		fmt.Fprintln(env.Stdout, value)
	}

	return nil
}

// runConfigList handles the "config list" command.
// Keys print in a fixed order; unknown keys found in the file are skipped.
func runConfigList(env *Env) error {
	data, err := config.List()
	if err != nil {
		return err
	}

	for _, key := range config.Keys() {
		if _, ok := data[key]; ok {
			continue
		}
		if envVal := env.Getenv(configEnvVars[key]); envVal != "" {
			data[key] = envVal + " (from env)"
		}
	}

	printed := 0
	for _, key := range config.Keys() {
		if value, ok := data[key]; ok {
			fmt.Fprintf(env.Stdout, "%s=%s\n", key, value)
			printed++
		}
	}

	if printed == 0 {
		fmt.Fprintln(env.Stdout, "No configuration set.")
		fmt.Fprintln(env.Stdout, "\nAvailable settings:")
		for _, key := range config.Keys() {
			fmt.Fprintf(env.Stdout, "  %s\n", key)
		}
	}

	return nil
}
