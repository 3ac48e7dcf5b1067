// Package merge overlays locally authored project overrides onto projects
// built from GitHub repositories.
package merge

import (
	"slices"

	"github.com/Zachkp/folio/internal/model"
)

// Projects merges overrides into remote. Remote projects are keyed by
// repository name and overrides by Override.Key. A matching override patches
// its project; any other override becomes a standalone project appended after
// the remote ones. Neither input is modified.
func Projects(remote []model.Project, overrides []model.Override) []model.Project {
	out := make([]model.Project, 0, len(remote)+len(overrides))
	index := make(map[string]int, len(remote)+len(overrides))

	for _, p := range remote {
		p.Tags = cloneTags(p.Tags)
		p.Normalize()
		if p.RepoName != "" {
			if _, dup := index[p.RepoName]; !dup {
				index[p.RepoName] = len(out)
			}
		}
		out = append(out, p)
	}

	for i := range overrides {
		o := &overrides[i]
		key := o.Key()
		if at, ok := index[key]; ok {
			out[at] = Apply(out[at], o)
			continue
		}
		index[key] = len(out)
		out = append(out, FromOverride(o))
	}
	return out
}

// Apply patches p with o. Scalar fields are replaced only when present. The
// language, framework, platform and tech-skill lists are concatenated and
// sorted, with equal values collapsed. Personal skills are always replaced.
func Apply(p model.Project, o *model.Override) model.Project {
	if o.Name != "" {
		p.Name = o.Name
	}
	if o.Desc != nil {
		p.Desc = *o.Desc
	}
	if o.Type != nil {
		p.Type = *o.Type
	}
	if o.URL != nil {
		p.URL = *o.URL
	}

	p.Langs = concatSorted(p.Langs, o.Langs)
	p.Frameworks = concatSorted(p.Frameworks, o.Frameworks)
	p.Platforms = concatSorted(p.Platforms, o.Platforms)
	p.TechSkills = concatSorted(p.TechSkills, o.TechSkills)
	p.PersonalSkills = slices.Clone(o.PersonalSkills)
	p.Normalize()
	return p
}

// FromOverride builds a standalone project from an override with no remote
// counterpart. Absent lists are empty and an absent type is Other.
func FromOverride(o *model.Override) model.Project {
	p := model.Project{
		Name: o.Name,
		Type: model.TypeOther,
		Tags: cloneTags(o.Tags),
	}
	if o.RepoName != nil {
		p.RepoName = *o.RepoName
	}
	if o.Desc != nil {
		p.Desc = *o.Desc
	}
	if o.Type != nil {
		p.Type = *o.Type
	}
	if o.URL != nil {
		p.URL = *o.URL
	}
	p.Normalize()
	return p
}

func concatSorted(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	slices.Sort(out)
	return slices.Compact(out)
}

func cloneTags(t model.Tags) model.Tags {
	return model.Tags{
		Platforms:      slices.Clone(t.Platforms),
		Langs:          slices.Clone(t.Langs),
		Frameworks:     slices.Clone(t.Frameworks),
		TechSkills:     slices.Clone(t.TechSkills),
		PersonalSkills: slices.Clone(t.PersonalSkills),
	}
}
