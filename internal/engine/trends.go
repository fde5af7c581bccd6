package engine

import (
	"context"
	"fmt"
	"math"
	"sort"

	"bioatlas/internal/models"
)

func (e *Engine) Trends(ctx context.Context) (Timeline, error) {
	rows, err := e.store.Timeline(ctx)
	if err != nil {
		return Timeline{}, fmt.Errorf("timeline: %w", err)
	}
	return BuildTimeline(rows), nil
}

// BuildTimeline sorts years ascending, drops empty buckets and computes growth
// between the two most recent remaining years.
func BuildTimeline(rows []models.YearCount) Timeline {
	years := make([]models.YearCount, 0, len(rows))
	for _, r := range rows {
		if r.Year <= 0 || r.Count <= 0 {
			continue
		}
		years = append(years, r)
	}
	sort.SliceStable(years, func(i, j int) bool { return years[i].Year < years[j].Year })

	t := Timeline{Years: years}
	if len(years) < 2 {
		return t
	}
	prev, last := years[len(years)-2], years[len(years)-1]
	g := &Growth{FromYear: prev.Year, ToYear: last.Year, Diff: last.Count - prev.Count}
	if prev.Count != 0 {
		g.Percent = round1(float64(g.Diff) * 100 / float64(prev.Count))
	}
	t.Growth = g
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
