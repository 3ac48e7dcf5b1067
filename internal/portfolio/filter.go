package portfolio

import (
	"slices"
	"strings"

	"github.com/Zachkp/folio/internal/model"
)

// Filter narrows the project grid. Empty fields match everything.
type Filter struct {
	Type      model.ProjectType
	Language  string
	Framework string
	Platform  string
}

// ParseFilter builds a filter from raw query values. An unknown type is an
// error; an empty type matches every project.
func ParseFilter(typ, lang, framework, platform string) (Filter, error) {
	f := Filter{
		Language:  strings.TrimSpace(lang),
		Framework: strings.TrimSpace(framework),
		Platform:  strings.TrimSpace(platform),
	}
	if strings.TrimSpace(typ) == "" {
		return f, nil
	}
	pt, err := model.ParseProjectType(typ)
	if err != nil {
		return Filter{}, err
	}
	f.Type = pt
	return f, nil
}

// Empty reports whether the filter matches everything.
func (f Filter) Empty() bool {
	return f == Filter{}
}

// Apply returns the projects matching every non-empty criterion, in order.
// Tag values compare case-insensitively.
func (f Filter) Apply(projects []model.Project) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if f.Match(&p) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether p passes the filter.
func (f Filter) Match(p *model.Project) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	return has(p.Langs, f.Language) && has(p.Frameworks, f.Framework) && has(p.Platforms, f.Platform)
}

func has(values []string, want string) bool {
	if want == "" {
		return true
	}
	return slices.ContainsFunc(values, func(v string) bool { return strings.EqualFold(v, want) })
}
