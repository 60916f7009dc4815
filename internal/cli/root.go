package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wrenware/repovis/internal/config"
	"github.com/wrenware/repovis/internal/github"
	"github.com/wrenware/repovis/internal/logging"
	"github.com/wrenware/repovis/internal/tui"
	"github.com/wrenware/repovis/internal/visibility"
)

// Version is set at build time via -ldflags "-X .../internal/cli.Version=x.y.z".
var Version = "dev"

// apiBaseURL overrides the GitHub API base URL; empty means the real API.
// Tests point it at an httptest server.
var apiBaseURL = ""

// Execute runs the repovis command tree.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	var configPath string
	var logLevel string

	root := &cobra.Command{
		Use:           "repovis",
		Short:         "Change the visibility of your GitHub repositories",
		Long:          "repovis interactively flips GitHub repositories between public and private,\neither one typed-in repository or a multi-selection from your repository list.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(configPath, logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return visibility.Run(cmd.Context(), visibility.Options{
				Config: cfg,
				Input:  cmd.InOrStdin(),
				Output: cmd.OutOrStdout(),
				NewClient: func(token string) visibility.Client {
					return newClient(cfg, token, logger)
				},
				Select: tui.SelectRepositories,
			})
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a configuration file (TOML)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, or error")
	root.AddCommand(newListCommand(&configPath, &logLevel))

	return root
}

func setup(configPath string, logLevel string) (config.Config, *zap.Logger, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(logLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func newClient(cfg config.Config, token string, logger *zap.Logger) *github.Client {
	return github.NewClient(token, apiBaseURL, cfg.PerPageOrDefault(), cfg.MaxPagesOrDefault(), logger)
}
