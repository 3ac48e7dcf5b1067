package model

import "strings"

// Experience is a job or course entry.
type Experience struct {
	Title        string `json:"title"`
	Organisation string `json:"organisation"`
	StartYear    string `json:"startYear"`
	StartMonth   string `json:"startMonth,omitempty"`
	EndYear      string `json:"endYear,omitempty"`
	EndMonth     string `json:"endMonth,omitempty"`
	Tags
}

// Current reports whether the experience has no end year.
func (e Experience) Current() bool {
	return e.EndYear == ""
}

// Period formats the date range, e.g. "Dec 2021 - Present".
func (e Experience) Period() string {
	end := e.EndYear
	if end == "" {
		end = "Present"
	}
	return join(e.StartMonth, e.StartYear) + " - " + join(e.EndMonth, end)
}

func join(month, year string) string {
	return strings.TrimSpace(month + " " + year)
}

// Language is a language name with its share of all repository code bytes.
type Language struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// Skills is the deduplicated union of tags across projects and experience.
type Skills struct {
	PersonalSkills []string   `json:"personalSkills"`
	TechSkills     []string   `json:"techSkills"`
	Languages      []Language `json:"langs"`
	Frameworks     []string   `json:"frameworks"`
	Platforms      []string   `json:"platforms"`
}

// Link is an external profile link shown in the header.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

// Site is the top-level site configuration data file.
type Site struct {
	Name              string   `json:"name"`
	About             string   `json:"about"`
	AvatarURL         string   `json:"avatarUrl"`
	ExcludedLanguages []string `json:"excludedLanguages"`
	Links             []Link   `json:"links"`
}

// DefaultExcludedLanguages are build-file formats dropped from language stats.
var DefaultExcludedLanguages = []string{"Makefile", "Dockerfile"}
