package github

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// RepoLanguages pairs a repository with its language breakdown.
type RepoLanguages struct {
	Repository
	Languages []LanguageBytes
}

// FetchRepositories lists account's repositories, skips exclude (the profile
// README repository), and fetches the languages of each one with at most
// limit requests in flight. The first failure cancels the remaining requests
// and is returned; results keep listing order.
func (c *Client) FetchRepositories(ctx context.Context, account, exclude string, limit int) ([]RepoLanguages, error) {
	repos, err := c.ListRepositories(ctx, account)
	if err != nil {
		return nil, err
	}

	kept := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if exclude != "" && strings.EqualFold(r.Name, exclude) {
			continue
		}
		kept = append(kept, r)
	}

	if limit < 1 {
		limit = 1
	}
	out := make([]RepoLanguages, len(kept))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range kept {
		g.Go(func() error {
			langs, err := c.Languages(gctx, account, kept[i].Name)
			if err != nil {
				return err
			}
			out[i] = RepoLanguages{Repository: kept[i], Languages: langs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
