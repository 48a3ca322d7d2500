// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/bmi-tui/internal/config"
	"github.com/jeranaias/bmi-tui/internal/logging"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// GLOBAL STATE
// =============================================================================

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

// state is what the persistent pre-run resolves for the subcommands. The
// loaded config itself is published with config.SetGlobal.
type state struct {
	flags globalFlags

	cfgPath string
	logger  *zap.Logger
}

// config returns the active configuration.
func (s *state) config() *config.Config {
	return config.Global()
}

// save writes cfg to the file this run loaded from and publishes it.
func (s *state) save(cfg *config.Config) error {
	var err error
	if s.flags.configPath != "" {
		err = config.SaveTo(cfg, s.cfgPath)
	} else {
		err = config.Save(cfg)
	}
	if err != nil {
		return err
	}
	config.SetGlobal(cfg)
	return nil
}

// load reads the configuration and builds the logger.
func (s *state) load() error {
	applyColorProfile(s.flags.noColor)

	var (
		cfg     *config.Config
		loadErr error
	)
	if s.flags.configPath != "" {
		c, err := config.LoadFromPath(s.flags.configPath)
		if err != nil {
			return NewCommandError("config", "load", s.flags.configPath, err)
		}
		cfg = c
		s.cfgPath = s.flags.configPath
	} else {
		cfg, loadErr = config.Load()
		if cfg == nil {
			return NewCommandError("config", "load", "defaults rejected", loadErr)
		}
		path, err := config.ActivePath()
		if err != nil {
			return NewCommandError("config", "locate", "no home directory", err)
		}
		s.cfgPath = path
	}
	config.SetGlobal(cfg)

	logger, err := logging.FromConfig(cfg, s.flags.verbose)
	if err != nil {
		// Logging is never fatal; the commands still work without it.
		logger = logging.Nop()
	}
	s.logger = logger

	if loadErr != nil {
		s.logger.Warn("config file ignored, using defaults", zap.Error(loadErr))
	}
	return nil
}

// close flushes the logger.
func (s *state) close() {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCommand builds the bmi command tree. Running it without a
// subcommand starts the interactive screen.
func NewRootCommand() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "bmi",
		Short: "BMI health assistant for the terminal",
		Long: `bmi computes your Body Mass Index from height (cm) and weight (kg)
and classifies it using the WHO adult bands.

Without a subcommand it opens the interactive screen with the form, the
result card and the assistant panel (ctrl+o).`,
		Example: `  bmi
  bmi calc --height 170 --weight 65
  bmi calc 170 65 --json
  bmi prompt
  bmi config set ui.theme light`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			st.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), st)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.flags.configPath, "config", "", "Config file (default ~/.bmi/config.toml)")
	pf.BoolVarP(&st.flags.verbose, "verbose", "v", false, "Log at debug level")
	pf.BoolVar(&st.flags.noColor, "no-color", false, "Disable colored output (also NO_COLOR)")

	root.AddCommand(
		newCalcCommand(st),
		newPromptCommand(st),
		newConfigCommand(st),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	return ExecuteArgs(context.Background(), NewRootCommand(), os.Args[1:])
}

// ExecuteArgs runs root with args, prints any unreported error to its error
// stream and maps it to an exit code.
func ExecuteArgs(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	if !isReported(err) {
		DisplayError(root.ErrOrStderr(), err, false)
	}
	return GetExitCode(err)
}

// =============================================================================
// VERSION
// =============================================================================

// VersionData is the --json payload of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

func newVersionCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if asJSON {
				return NewJSONResponse("version", VersionData{
					Version:   Version,
					GitCommit: GitCommit,
					BuildDate: BuildDate,
					GoVersion: runtime.Version(),
				}).Write(w)
			}
			fmt.Fprintf(w, "bmi version %s\n", Version)
			fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
