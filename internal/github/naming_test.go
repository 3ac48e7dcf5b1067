package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProjectName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"lift-sim", "Lift Sim"},
		{"LiftSim", "Lift Sim"},
		{"MNK-TicTacToe", "MNK Tic Tac Toe"},
		{"ATel-Lookup", "A Tel Lookup"},
		{"my_cool_repo", "My Cool Repo"},
		{"rohankhayech.github.io", "Rohankhayech Github Io"},
		{"guitar-tuner-2", "Guitar Tuner 2"},
		{"v2api", "V 2 Api"},
		{"--edge--", "Edge"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProjectName(tt.in))
		})
	}
}

func TestCapitalise(t *testing.T) {
	assert.Equal(t, "Kotlin", Capitalise("kotlin"))
	assert.Equal(t, "C#", Capitalise("C#"))
	assert.Equal(t, "Éclair", Capitalise("éclair"))
	assert.Equal(t, "", Capitalise(""))
}
