package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectType(t *testing.T) {
	tests := []struct {
		in      string
		want    ProjectType
		wantErr bool
	}{
		{"Application", TypeApplication, false},
		{"app", TypeApplication, false},
		{"LIB", TypeLibrary, false},
		{"University Project", TypeUniversity, false},
		{"uni", TypeUniversity, false},
		{"", TypeOther, false},
		{"Other", TypeOther, false},
		{"spaceship", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProjectType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectTypeRank(t *testing.T) {
	assert.Less(t, TypeApplication.Rank(), TypeLibrary.Rank())
	assert.Less(t, TypeLibrary.Rank(), TypeUniversity.Rank())
	assert.Less(t, TypeUniversity.Rank(), TypeOther.Rank())
	assert.Equal(t, len(ProjectTypes), ProjectType("bogus").Rank())
}

func TestOverrideUnmarshal(t *testing.T) {
	data := `{"name":"Lift Simulator","repoName":"LiftSim","type":"app","frameworks":["JavaFX"]}`

	var o Override
	require.NoError(t, json.Unmarshal([]byte(data), &o))

	assert.Equal(t, "LiftSim", o.Key())
	require.NotNil(t, o.Type)
	assert.Equal(t, TypeApplication, *o.Type)
	assert.Nil(t, o.Desc)
	assert.Equal(t, []string{"JavaFX"}, o.Frameworks)
	assert.Nil(t, o.Langs)
}

func TestOverrideKeyFallsBackToName(t *testing.T) {
	empty := ""
	o := Override{Name: "Portfolio", RepoName: &empty}
	assert.Equal(t, "Portfolio", o.Key())
}

func TestTagsNormalize(t *testing.T) {
	tags := Tags{Langs: []string{"Go"}}
	tags.Normalize()

	assert.Equal(t, []string{"Go"}, tags.Langs)
	assert.NotNil(t, tags.Platforms)
	assert.Empty(t, tags.Platforms)
	assert.NotNil(t, tags.PersonalSkills)
}

func TestExperiencePeriod(t *testing.T) {
	job := Experience{StartYear: "2021", StartMonth: "Dec"}
	assert.Equal(t, "Dec 2021 - Present", job.Period())
	assert.True(t, job.Current())

	course := Experience{StartYear: "2019", EndYear: "2021"}
	assert.Equal(t, "2019 - 2021", course.Period())
	assert.False(t, course.Current())

	admin := Experience{StartYear: "2019", StartMonth: "Jan", EndYear: "2021", EndMonth: "Dec"}
	assert.Equal(t, "Jan 2019 - Dec 2021", admin.Period())
}
