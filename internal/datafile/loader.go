// Package datafile loads the local JSON data files: category tables,
// project overrides, experience records and the site configuration.
package datafile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zachkp/folio/internal/category"
	"github.com/Zachkp/folio/internal/model"
)

// File names relative to the data directory.
const (
	PlatformsFile  = "categories/platforms.json"
	FrameworksFile = "categories/frameworks.json"
	TechSkillsFile = "categories/tech_skills.json"
	ProjectsFile   = "projects.json"
	JobsFile       = "jobs.json"
	CoursesFile    = "courses.json"
	SiteFile       = "config.json"
)

// Bundle is everything read from the data directory. It is read-only after
// Load returns.
type Bundle struct {
	Categories category.Tables
	Overrides  []model.Override
	Jobs       []model.Experience
	Courses    []model.Experience
	Site       model.Site
}

// Load reads every data file under dir. Any missing or malformed file is an
// error.
func Load(dir string) (*Bundle, error) {
	var b Bundle
	var err error

	if b.Categories, err = LoadCategories(dir); err != nil {
		return nil, err
	}
	if err := LoadJSON(dir, ProjectsFile, &b.Overrides); err != nil {
		return nil, err
	}
	if err := LoadJSON(dir, JobsFile, &b.Jobs); err != nil {
		return nil, err
	}
	if err := LoadJSON(dir, CoursesFile, &b.Courses); err != nil {
		return nil, err
	}
	if err := LoadJSON(dir, SiteFile, &b.Site); err != nil {
		return nil, err
	}

	if b.Site.ExcludedLanguages == nil {
		b.Site.ExcludedLanguages = model.DefaultExcludedLanguages
	}
	for i := range b.Jobs {
		b.Jobs[i].Normalize()
	}
	for i := range b.Courses {
		b.Courses[i].Normalize()
	}

	return &b, nil
}

// LoadCategories reads the three topic lookup tables.
func LoadCategories(dir string) (category.Tables, error) {
	var t category.Tables
	if err := LoadJSON(dir, PlatformsFile, &t.Platforms); err != nil {
		return t, err
	}
	if err := LoadJSON(dir, FrameworksFile, &t.Frameworks); err != nil {
		return t, err
	}
	if err := LoadJSON(dir, TechSkillsFile, &t.TechSkills); err != nil {
		return t, err
	}
	return t, nil
}

// LoadJSON decodes the named file under dir into v.
func LoadJSON(dir, name string, v any) error {
	path := filepath.Join(dir, filepath.FromSlash(name))
	data, err := os.ReadFile(path) //nolint:gosec // data dir is operator supplied
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
