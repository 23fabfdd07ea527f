package service

import (
	"github.com/xolan/worklog/internal/stats"
)

// StatsService derives aggregate statistics from an analysis
type StatsService struct{}

// NewStatsService creates a new StatsService
func NewStatsService() *StatsService {
	return &StatsService{}
}

// ForAnalysis returns summary figures, per-activity shares of the total and the busiest group
func (s *StatsService) ForAnalysis(a *Analysis) *StatsResult {
	result := &StatsResult{
		Day:           a.Day,
		Summary:       a.Summary,
		Activities:    make([]ActivityShare, 0, len(a.Breakdown)),
		FlaggedGroups: a.FlaggedGroups(),
		Warnings:      a.Warnings,
	}

	for _, b := range a.Breakdown {
		result.Activities = append(result.Activities, ActivityShare{
			ActivityBreakdown: b,
			Percent:           stats.Share(b.Total, a.Summary.Total),
		})
	}

	for i := range a.Groups {
		g := &a.Groups[i]
		if g.IsEmpty() {
			continue
		}
		if result.Busiest == nil || g.Total > result.Busiest.Total {
			result.Busiest = g
		}
	}

	return result
}
