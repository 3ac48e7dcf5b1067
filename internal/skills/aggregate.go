// Package skills builds the deduplicated skill lists shown in the skills
// section from every project and experience record.
package skills

import "github.com/Zachkp/folio/internal/model"

// Aggregate unions the tag lists of projects, courses and jobs, visited in
// that order, keeping the first occurrence of every value. Languages start
// with top (already ranked by percent); names found only in the records are
// appended with a zero percent.
func Aggregate(projects []model.Project, jobs, courses []model.Experience, top []model.Language) model.Skills {
	all := make([]model.Tags, 0, len(projects)+len(jobs)+len(courses))
	for _, p := range projects {
		all = append(all, p.Tags)
	}
	for _, c := range courses {
		all = append(all, c.Tags)
	}
	for _, j := range jobs {
		all = append(all, j.Tags)
	}

	field := func(get func(model.Tags) []string) []string {
		var seen []string
		for _, t := range all {
			seen = append(seen, get(t)...)
		}
		return Unique(seen)
	}

	return model.Skills{
		PersonalSkills: field(func(t model.Tags) []string { return t.PersonalSkills }),
		TechSkills:     field(func(t model.Tags) []string { return t.TechSkills }),
		Languages:      languages(top, field(func(t model.Tags) []string { return t.Langs })),
		Frameworks:     field(func(t model.Tags) []string { return t.Frameworks }),
		Platforms:      field(func(t model.Tags) []string { return t.Platforms }),
	}
}

// Unique drops every repetition after the first occurrence. The result is
// never nil.
func Unique(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func languages(top []model.Language, names []string) []model.Language {
	out := make([]model.Language, 0, len(top)+len(names))
	seen := make(map[string]struct{}, len(top)+len(names))
	for _, l := range top {
		if _, ok := seen[l.Name]; ok {
			continue
		}
		seen[l.Name] = struct{}{}
		out = append(out, l)
	}
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, model.Language{Name: name})
	}
	return out
}
