// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation.
//
// Subcommands:
//   show (default)      Display current configuration
//   get <key>           Print one value
//   set <key> <value>   Set a value and save the file
//   reset               Reset to default configuration
//   path                Show configuration file path
//
// Keys use dot notation (ui.theme); underscores in the section part are
// accepted too (ui_theme).

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/bmi-tui/internal/config"
	"github.com/jeranaias/bmi-tui/internal/ui/styles"
)

// ConfigPathData is the --json payload of config path.
type ConfigPathData struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func newConfigCommand(st *state) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and modify configuration",
		Example: `  bmi config
  bmi config get ui.theme
  bmi config set chat.enabled false
  bmi config path --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShow(cmd, st, asJSON)
		},
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Display current configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return configShow(cmd, st, asJSON)
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				key := normalizeKey(args[0])
				value, err := st.config().Get(key)
				if err != nil {
					return NewNotFoundError("config key", key)
				}
				if asJSON {
					return NewJSONResponse("config get", map[string]interface{}{key: value}).Write(cmd.OutOrStdout())
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value and save it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return configSet(cmd, st, normalizeKey(args[0]), args[1])
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Reset to default configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := st.save(config.Default()); err != nil {
					return NewCommandError("config", "reset", "failed to save config", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess("Configuration reset to defaults"))
				fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", st.cfgPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := os.Stat(st.cfgPath)
				exists := err == nil
				if asJSON {
					return NewJSONResponse("config path", ConfigPathData{Path: st.cfgPath, Exists: exists}).Write(cmd.OutOrStdout())
				}
				fmt.Fprintln(cmd.OutOrStdout(), st.cfgPath)
				if !exists {
					fmt.Fprintln(cmd.ErrOrStderr(), styles.RenderInfo("file does not exist - created on first save"))
				}
				return nil
			},
		},
	)
	return cmd
}

// configShow prints every key with its current value.
func configShow(cmd *cobra.Command, st *state, asJSON bool) error {
	w := cmd.OutOrStdout()
	if asJSON {
		return NewJSONResponse("config show", st.config()).Write(w)
	}

	fmt.Fprintln(w, TitleStyle.Render("bmi configuration"))
	fmt.Fprintln(w, RenderSeparator())
	for _, key := range config.GetAllKeys() {
		value, err := st.config().Get(key)
		if err != nil {
			continue
		}
		fmt.Fprintln(w, RenderLabel(key)+ValueStyle.Render(fmt.Sprint(value)))
	}
	fmt.Fprintln(w, RenderSeparator())
	fmt.Fprintln(w, DimStyle.Render(st.cfgPath))
	return nil
}

// configSet validates the change on a copy before writing the file.
func configSet(cmd *cobra.Command, st *state, key, value string) error {
	next := st.config().Clone()
	if err := next.Set(key, value); err != nil {
		if _, getErr := next.Get(key); getErr != nil {
			return NewNotFoundError("config key", key)
		}
		return NewValidationErrorWithExample(key, value, err.Error(), "bmi config set ui.theme light")
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if err := st.save(next); err != nil {
		return NewCommandError("config", "set", "failed to save config", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess(key+" = "+value))
	return nil
}

// normalizeKey lowercases key and turns ui_theme into ui.theme. Field names
// with underscores (show_help) are kept.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if strings.Contains(key, ".") {
		return key
	}
	for _, known := range config.GetAllKeys() {
		if strings.Replace(known, ".", "_", 1) == key {
			return known
		}
	}
	return key
}
