// Package category classifies repositories from their topic tags.
package category

import "github.com/Zachkp/folio/internal/model"

// typeTopics maps type-determining topics to a project type.
var typeTopics = map[string]model.ProjectType{
	"app":         model.TypeApplication,
	"application": model.TypeApplication,
	"library":     model.TypeLibrary,
	"university":  model.TypeUniversity,
}

// Tables are the topic → display name lookups. They are loaded once and
// never written afterwards, so concurrent reads are safe.
type Tables struct {
	Platforms  map[string]string
	Frameworks map[string]string
	TechSkills map[string]string
}

// Result is the classification of one repository.
type Result struct {
	Type       model.ProjectType
	Platforms  []string
	Frameworks []string
	TechSkills []string
}

// Classify maps topics to a project type and the display names found in each
// table. The first type-determining topic wins; unknown topics are skipped.
func (t Tables) Classify(topics []string) Result {
	res := Result{
		Type:       model.TypeOther,
		Platforms:  []string{},
		Frameworks: []string{},
		TechSkills: []string{},
	}

	typed := false
	for _, topic := range topics {
		if pt, ok := typeTopics[topic]; ok && !typed {
			res.Type = pt
			typed = true
		}
		if name, ok := t.Platforms[topic]; ok {
			res.Platforms = append(res.Platforms, name)
		}
		if name, ok := t.Frameworks[topic]; ok {
			res.Frameworks = append(res.Frameworks, name)
		}
		if name, ok := t.TechSkills[topic]; ok {
			res.TechSkills = append(res.TechSkills, name)
		}
	}
	return res
}
