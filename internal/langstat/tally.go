// Package langstat accumulates repository language byte counts and turns
// them into percentage shares for the language chart.
package langstat

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Zachkp/folio/internal/model"
)

// Chart defaults.
const (
	DefaultMaxBars   = 6
	DefaultThreshold = 1.0
)

// Tally maps a language name to its accumulated byte count.
type Tally map[string]int64

// Add accumulates bytes for one language.
func (t Tally) Add(name string, bytes int64) {
	t[name] += bytes
}

// Percentages returns each language's share of the total bytes, leaving out
// excluded languages before totals are computed. Values are not rounded. A
// zero total yields an empty map.
func (t Tally) Percentages(excluded []string) map[string]float64 {
	var total int64
	for name, n := range t {
		if !slices.Contains(excluded, name) {
			total += n
		}
	}

	out := make(map[string]float64)
	if total <= 0 {
		return out
	}
	for name, n := range t {
		if slices.Contains(excluded, name) {
			continue
		}
		out[name] = float64(n) / float64(total) * 100
	}
	return out
}

// Rank orders percentages descending, ties broken by name.
func Rank(pcts map[string]float64) []model.Language {
	langs := make([]model.Language, 0, len(pcts))
	for name, p := range pcts {
		langs = append(langs, model.Language{Name: name, Percent: p})
	}
	slices.SortFunc(langs, func(a, b model.Language) int {
		if c := cmp.Compare(b.Percent, a.Percent); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return langs
}

// ChartSplit is the ranked language list divided for display.
type ChartSplit struct {
	Bars   []model.Language `json:"bars"`
	Others []model.Language `json:"others"`
}

// Chart takes the first maxBars ranked languages above threshold percent as
// bars; everything past the first maxBars entries is listed under Others.
func Chart(ranked []model.Language, maxBars int, threshold float64) ChartSplit {
	maxBars = max(maxBars, 0)
	head, tail := ranked, []model.Language{}
	if len(ranked) > maxBars {
		head, tail = ranked[:maxBars], ranked[maxBars:]
	}

	split := ChartSplit{Bars: []model.Language{}, Others: slices.Clone(tail)}
	if split.Others == nil {
		split.Others = []model.Language{}
	}
	for _, l := range head {
		if l.Percent > threshold {
			split.Bars = append(split.Bars, l)
		}
	}
	return split
}
