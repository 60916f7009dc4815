package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wrenware/repovis/internal/domain"
	"github.com/wrenware/repovis/internal/prompt"
	"github.com/wrenware/repovis/internal/render"
)

func newListCommand(configPath *string, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your GitHub repositories",
		Long:  "list fetches your repository listing (forks excluded) and prints it as a table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			token, err := prompter.Token(cfg.GitHub.Token)
			if err != nil {
				return err
			}

			repos, err := newClient(cfg, token, logger).ListRepositories(cmd.Context())
			if err != nil {
				return err
			}
			renderListing(cmd.OutOrStdout(), repos)
			return nil
		},
	}
}

// renderListing prints one table row per repository plus the total count.
func renderListing(w io.Writer, repos []domain.Repository) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Visibility", "URL"})
	for _, repo := range repos {
		tag := repo.VisibilityTag()
		if tag == "" {
			tag = "unknown"
		}
		table.Append([]string{repo.Name, tag, render.WebURL(repo.URL)})
	}
	table.Render()
	fmt.Fprintf(w, "%s %d repositories\n", render.SuccessMark, len(repos))
}
