package visibility

import (
	"context"
	"fmt"
	"io"

	"github.com/wrenware/repovis/internal/config"
	"github.com/wrenware/repovis/internal/domain"
	"github.com/wrenware/repovis/internal/prompt"
	"github.com/wrenware/repovis/internal/render"
)

// Client is the slice of the GitHub API the workflow needs.
type Client interface {
	ListRepositories(ctx context.Context) ([]domain.Repository, error)
	UpdateVisibility(ctx context.Context, owner string, name string, private bool) error
}

// Selector collects a multi-selection over the fetched repositories and
// returns the chosen indices in selection order.
type Selector func(repos []domain.Repository) ([]int, error)

// Options wires the workflow's collaborators. NewClient is called once the
// token is known; Select runs the interactive multi-select.
type Options struct {
	Config    config.Config
	Input     io.Reader
	Output    io.Writer
	NewClient func(token string) Client
	Select    Selector
}

// Run drives the interactive visibility workflow: collect username and
// token, pick the target repositories (a single typed name or a
// multi-selection from the fetched listing), then prompt for and apply the
// privacy flag per repository, in selection order. The first failing
// update aborts the remainder of the batch.
func Run(ctx context.Context, opts Options) error {
	prompter := prompt.New(opts.Input, opts.Output)

	username := opts.Config.GitHub.Username
	if username == "" {
		var err error
		username, err = prompter.Required("Enter username: ", "username")
		if err != nil {
			return err
		}
	}

	token, err := prompter.Token(opts.Config.GitHub.Token)
	if err != nil {
		return err
	}
	client := opts.NewClient(token)

	multiple, err := prompter.Confirm("Do you want to modify multiple repositories?: (y/N) ")
	if err != nil {
		return err
	}

	var targets []domain.Repository
	if multiple {
		targets, err = selectTargets(ctx, client, opts.Select, opts.Output)
	} else {
		targets, err = singleTarget(prompter, username)
	}
	if err != nil {
		return err
	}

	for _, repo := range targets {
		line, err := render.Line(repo, 0)
		if err != nil {
			return err
		}
		fmt.Fprintln(opts.Output, line)

		private, err := prompter.PrivacyFlag(">> Make this repo private?: (true/false) ")
		if err != nil {
			return err
		}
		if err := client.UpdateVisibility(ctx, username, repo.Name, private); err != nil {
			return err
		}
		fmt.Fprintf(opts.Output, "%s Repository %s visibility updated successfully!\n",
			render.SuccessMark, repo.Name)
	}
	return nil
}

// singleTarget synthesizes a record for a typed-in repository name. No
// lookup happens, so its visibility stays unknown.
func singleTarget(prompter *prompt.Prompter, username string) ([]domain.Repository, error) {
	name, err := prompter.Required("Enter repository: ", "repository")
	if err != nil {
		return nil, err
	}
	return []domain.Repository{{
		Name: name,
		URL:  fmt.Sprintf("https://github.com/%s/%s", username, name),
	}}, nil
}

// selectTargets fetches the listing, reports the count, runs the
// multi-select, and rewrites the chosen URLs into their browsable form.
func selectTargets(ctx context.Context, client Client, sel Selector, out io.Writer) ([]domain.Repository, error) {
	repos, err := client.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "%s Fetched %d repositories\n", render.SuccessMark, len(repos))

	indices, err := sel(repos)
	if err != nil {
		return nil, err
	}
	targets := make([]domain.Repository, 0, len(indices))
	for _, i := range indices {
		repo := repos[i]
		repo.URL = render.WebURL(repo.URL)
		targets = append(targets, repo)
	}
	return targets, nil
}
