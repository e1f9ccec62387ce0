// Command ssenrah-core drives the effective-configuration engine directly
// from a terminal, standing in for the real (out-of-scope) RPC transport
// that would otherwise bind this backend to the GUI frontend. It exists for
// manual verification: opening a project, printing the effective config,
// and watching for file changes, all without a GUI in the loop.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hyperblaze/ssenrah/internal/backendlog"
	"github.com/hyperblaze/ssenrah/internal/effconfig"
	"github.com/hyperblaze/ssenrah/internal/lockfile"
)

//nolint:gochecknoglobals // cobra command wiring requires package-level state.
var (
	configPath  string
	projectFlag string
	logLevel    string

	engine = effconfig.NewEngine()

	rootCmd = &cobra.Command{
		Use:   "ssenrah-core",
		Short: "Exercises the ssenrah effective-configuration engine from the terminal.",
		Long: "ssenrah-core drives internal/effconfig's Engine directly: it opens a " +
			"project, resolves and merges the four configuration scopes, and can " +
			"stream file-change events, all without the GUI's RPC transport.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadFileConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config file: %w", err)
			}
			if logLevel == "" {
				logLevel = fc.LogLevel
			}
			if logLevel != "" {
				if err := backendlog.SetLevel(logLevel); err != nil {
					return fmt.Errorf("invalid log level %q: %w", logLevel, err)
				}
			}

			project := projectFlag
			if project == "" {
				project = fc.Project
			}
			if project != "" {
				if _, err := engine.OpenProject(project); err != nil {
					return fmt.Errorf("opening project %q: %w", project, err)
				}
			}

			configDir, err := effconfig.ConfigDir()
			if err != nil {
				return err
			}
			if err := lockfile.Acquire(configDir); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			configDir, err := effconfig.ConfigDir()
			if err == nil {
				lockfile.Release(configDir)
			}
			engine.Close()
		},
	}
)

//nolint:gochecknoinits // cobra command tree assembly.
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional TOML config file")
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "", "project root to open before running the command")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(effectiveCmd)
	rootCmd.AddCommand(watchCmd)
}

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Print platform detection info (OS, WSL, shell, Claude Code CLI presence).",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := engine.GetPlatformInfo()
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print the currently open project's info.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(engine.GetProjectInfo())
	},
}

var effectiveCmd = &cobra.Command{
	Use:   "effective",
	Short: "Compute and print the effective configuration merged from all four scopes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := engine.ComputeEffectiveConfig()
		if err != nil {
			return err
		}
		return printJSON(cfg)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Subscribe to file-change events and print them until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := engine.SubscribeFileChanges()
		if err != nil {
			return err
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		fmt.Fprintln(os.Stderr, "watching for file changes, press Ctrl+C to stop")
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return nil
				}
				if err := printJSON(event); err != nil {
					return err
				}
			case <-sigCh:
				engine.UnsubscribeFileChanges()
				return nil
			}
		}
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
