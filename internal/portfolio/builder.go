// Package portfolio runs the aggregation pipeline: it fetches repositories,
// classifies and merges them with local overrides, and derives the skill,
// language and colour data the site renders.
package portfolio

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/colors"
	"github.com/Zachkp/folio/internal/datafile"
	"github.com/Zachkp/folio/internal/github"
	"github.com/Zachkp/folio/internal/langstat"
	"github.com/Zachkp/folio/internal/merge"
	"github.com/Zachkp/folio/internal/model"
	"github.com/Zachkp/folio/internal/skills"
)

// RepositorySource lists an account's repositories with their languages.
type RepositorySource interface {
	FetchRepositories(ctx context.Context, account, exclude string, limit int) ([]github.RepoLanguages, error)
}

// ColorSource provides the language colour document.
type ColorSource interface {
	Fetch(ctx context.Context) (colors.Document, error)
}

// ProfileSource provides the account tagline.
type ProfileSource interface {
	Tagline(ctx context.Context, account string) (string, error)
}

// Sources groups the remote inputs of a build.
type Sources struct {
	Repositories RepositorySource
	Colors       ColorSource
	Profile      ProfileSource
}

// Options configure which repositories a build reads.
type Options struct {
	Account       string
	ExcludeRepo   string
	MaxConcurrent int
}

// Stats describe one build.
type Stats struct {
	Repositories int           `json:"repositories"`
	Projects     int           `json:"projects"`
	Languages    int           `json:"languages"`
	Duration     time.Duration `json:"duration"`
}

// Portfolio is everything one page render needs.
type Portfolio struct {
	Site      model.Site          `json:"site"`
	Tagline   string              `json:"tagline"`
	Projects  []model.Project     `json:"projects"`
	Jobs      []model.Experience  `json:"jobs"`
	Courses   []model.Experience  `json:"courses"`
	Skills    model.Skills        `json:"skills"`
	Languages []model.Language    `json:"languages"`
	Chart     langstat.ChartSplit `json:"chart"`
	Colors    map[string]string   `json:"colors"`
	BuiltAt   time.Time           `json:"builtAt"`
	Stats     Stats               `json:"stats"`
}

// Builder runs the pipeline. It holds no state between builds and is safe
// for concurrent use.
type Builder struct {
	src  Sources
	data *datafile.Bundle
	opts Options
	log  *slog.Logger
	now  func() time.Time
}

// NewBuilder creates a builder over the given sources and local data.
func NewBuilder(src Sources, data *datafile.Bundle, opts Options, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{src: src, data: data, opts: opts, log: log, now: time.Now}
}

// Build runs one pipeline pass. The repository fetch, colour registry fetch
// and tagline lookup run concurrently; the first failure cancels the others
// and fails the build.
func (b *Builder) Build(ctx context.Context) (*Portfolio, error) {
	start := b.now()

	var (
		repos   []github.RepoLanguages
		doc     colors.Document
		tagline string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := b.src.Repositories.FetchRepositories(gctx, b.opts.Account, b.opts.ExcludeRepo, b.opts.MaxConcurrent)
		if err != nil {
			return fmt.Errorf("fetch repositories: %w", err)
		}
		repos = r
		return nil
	})
	g.Go(func() error {
		d, err := b.src.Colors.Fetch(gctx)
		if err != nil {
			return fmt.Errorf("fetch colours: %w", err)
		}
		doc = d
		return nil
	})
	g.Go(func() error {
		t, err := b.src.Profile.Tagline(gctx, b.opts.Account)
		if err != nil {
			return fmt.Errorf("fetch tagline: %w", err)
		}
		tagline = t
		return nil
	})
	if err := g.Wait(); err != nil {
		b.log.Error("portfolio build failed", "account", b.opts.Account, "error", err)
		return nil, err
	}

	excluded := b.data.Site.ExcludedLanguages
	tally := make(langstat.Tally)
	remote := make([]model.Project, 0, len(repos))
	for _, r := range repos {
		remote = append(remote, b.project(r, excluded, tally))
	}

	projects := merge.Projects(remote, b.data.Overrides)
	SortByType(projects)

	ranked := langstat.Rank(tally.Percentages(excluded))
	sk := skills.Aggregate(projects, b.data.Jobs, b.data.Courses, ranked)

	names := make([]string, len(sk.Languages))
	for i, l := range sk.Languages {
		names[i] = l.Name
	}

	p := &Portfolio{
		Site:      b.data.Site,
		Tagline:   tagline,
		Projects:  projects,
		Jobs:      b.data.Jobs,
		Courses:   b.data.Courses,
		Skills:    sk,
		Languages: ranked,
		Chart:     langstat.Chart(ranked, langstat.DefaultMaxBars, langstat.DefaultThreshold),
		Colors:    colors.Resolve(doc, names),
		BuiltAt:   b.now(),
	}
	p.Stats = Stats{
		Repositories: len(repos),
		Projects:     len(projects),
		Languages:    len(ranked),
		Duration:     p.BuiltAt.Sub(start),
	}

	b.log.Info("portfolio built",
		"account", b.opts.Account,
		"repositories", p.Stats.Repositories,
		"projects", p.Stats.Projects,
		"duration", p.Stats.Duration,
	)
	return p, nil
}

// project turns one repository into a project, adding its language bytes to
// tally. Excluded languages are left out of both.
func (b *Builder) project(r github.RepoLanguages, excluded []string, tally langstat.Tally) model.Project {
	cat := b.data.Categories.Classify(r.Topics)

	langs := make([]string, 0, len(r.Languages))
	for _, l := range r.Languages {
		name := github.Capitalise(l.Name)
		if slices.Contains(excluded, name) {
			continue
		}
		tally.Add(name, l.Bytes)
		langs = append(langs, name)
	}

	return model.Project{
		Name:     github.FormatProjectName(r.Name),
		RepoName: r.Name,
		Desc:     r.Description,
		Type:     cat.Type,
		URL:      r.HTMLURL,
		Tags: model.Tags{
			Platforms:      cat.Platforms,
			Langs:          langs,
			Frameworks:     cat.Frameworks,
			TechSkills:     cat.TechSkills,
			PersonalSkills: []string{},
		},
	}
}

// SortByType orders projects by type rank, keeping the relative order of
// projects of the same type.
func SortByType(projects []model.Project) {
	slices.SortStableFunc(projects, func(a, b model.Project) int {
		return cmp.Compare(a.Type.Rank(), b.Type.Rank())
	})
}
