// Package model holds the portfolio data types shared by the pipeline stages.
package model

import (
	"fmt"
	"strings"
)

// ProjectType classifies a project for grouping on the page.
type ProjectType string

const (
	TypeApplication ProjectType = "Application"
	TypeLibrary     ProjectType = "Library"
	TypeUniversity  ProjectType = "University Project"
	TypeOther       ProjectType = "Other"
)

// ProjectTypes lists every type in display order.
var ProjectTypes = []ProjectType{TypeApplication, TypeLibrary, TypeUniversity, TypeOther}

// ParseProjectType accepts the display names and the short forms used in
// hand-written data files.
func ParseProjectType(s string) (ProjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "application", "app":
		return TypeApplication, nil
	case "library", "lib":
		return TypeLibrary, nil
	case "university project", "university", "uni":
		return TypeUniversity, nil
	case "other", "project", "":
		return TypeOther, nil
	default:
		return "", fmt.Errorf("unknown project type %q", s)
	}
}

// Rank orders types for display. Unknown values sort last.
func (t ProjectType) Rank() int {
	for i, pt := range ProjectTypes {
		if pt == t {
			return i
		}
	}
	return len(ProjectTypes)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ProjectType) UnmarshalText(b []byte) error {
	pt, err := ParseProjectType(string(b))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// Tags are the skill categories carried by projects and experience records.
type Tags struct {
	Platforms      []string `json:"platforms"`
	Langs          []string `json:"langs"`
	Frameworks     []string `json:"frameworks"`
	TechSkills     []string `json:"techSkills"`
	PersonalSkills []string `json:"personalSkills"`
}

// Normalize replaces nil lists with empty ones.
func (t *Tags) Normalize() {
	for _, l := range []*[]string{&t.Platforms, &t.Langs, &t.Frameworks, &t.TechSkills, &t.PersonalSkills} {
		if *l == nil {
			*l = []string{}
		}
	}
}

// Project is a portfolio entry built from a GitHub repository, a local
// override, or both.
type Project struct {
	Name     string      `json:"name"`
	RepoName string      `json:"repoName,omitempty"`
	Desc     string      `json:"desc"`
	Type     ProjectType `json:"type"`
	URL      string      `json:"url"`
	Tags
}

// Override patches or adds a project from local data. Nil fields are absent.
type Override struct {
	Name     string       `json:"name"`
	RepoName *string      `json:"repoName,omitempty"`
	Desc     *string      `json:"desc,omitempty"`
	Type     *ProjectType `json:"type,omitempty"`
	URL      *string      `json:"url,omitempty"`
	Tags
}

// Key returns the merge key: the repository name when given, else the name.
func (o *Override) Key() string {
	if o.RepoName != nil && *o.RepoName != "" {
		return *o.RepoName
	}
	return o.Name
}
