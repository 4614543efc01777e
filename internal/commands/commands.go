// Package commands builds the CLI command tree.
package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jasminelim327/autocomplete/internal/config"
	"github.com/jasminelim327/autocomplete/internal/demo"
)

// New returns the root command. Running it without a subcommand starts
// the interactive demo.
func New() *cobra.Command {
	var (
		configPath string
		dataset    string
		async      bool
		debounce   int
		single     bool
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "autocomplete",
		Short: "Searchable multi-select dropdown for the terminal.",
		Example: `
autocomplete
autocomplete --dataset cities --single
autocomplete --async --debounce 300
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "autocomplete")
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
			}

			svc := config.NewService()
			var (
				cfg *config.Config
				err error
			)
			if configPath != "" {
				cfg, err = svc.LoadFromPath(configPath)
			} else {
				cfg, err = svc.Load()
			}
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("dataset") {
				cfg.Dataset = dataset
			}
			if flags.Changed("async") {
				cfg.Async = async
			}
			if flags.Changed("debounce") {
				cfg.DebounceMs = debounce
			}
			if flags.Changed("single") {
				cfg.Multiple = !single
			}

			return demo.Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a config file (defaults to the user config directory).")
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "fruits", "Dataset to search. One of 'fruits' or 'cities'.")
	cmd.Flags().BoolVar(&async, "async", false, "Debounce filtering instead of running it on every keystroke.")
	cmd.Flags().IntVar(&debounce, "debounce", 600, "Debounce interval in milliseconds for async mode.")
	cmd.Flags().BoolVar(&single, "single", false, "Single-select mode instead of multi-select.")
	cmd.Flags().StringVar(&logFile, "log", "", "Write debug logs to this file.")

	addVersion(cmd)
	return cmd
}
