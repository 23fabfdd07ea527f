package service

import (
	"testing"
	"time"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/group"
	"github.com/xolan/worklog/internal/stats"
)

func TestNewStatsService(t *testing.T) {
	if NewStatsService() == nil {
		t.Fatal("expected non-nil service")
	}
}

func TestStatsService_ForAnalysis(t *testing.T) {
	a := NewAnalysisService(config.DefaultConfig()).AnalyzeRows([]group.RawRow{
		group.Boundary("g1", "Mon"),
		group.Content("(09:00-12:00)", "dev"),
		group.Content("(13:00-14:00)", ""),
		group.Boundary("g2", "Tue"),
		group.Boundary("g3", "Wed"),
		group.Content("(09:00-17:00)", "dev"),
	}, testDay)

	result := NewStatsService().ForAnalysis(a)

	if result.Summary.Total != 12*time.Hour {
		t.Errorf("Summary.Total = %v, expected 12h", result.Summary.Total)
	}
	if result.Summary.NonEmptyGroups != 2 {
		t.Errorf("NonEmptyGroups = %d, expected 2", result.Summary.NonEmptyGroups)
	}
	if len(result.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(result.Activities))
	}
	dev, none := result.Activities[0], result.Activities[1]
	if dev.Activity != "dev" || dev.Total != 11*time.Hour {
		t.Errorf("first activity = %+v, expected dev 11h", dev)
	}
	if none.Activity != stats.NoActivity {
		t.Errorf("second activity = %q, expected %q", none.Activity, stats.NoActivity)
	}
	if sum := dev.Percent + none.Percent; sum < 99.999 || sum > 100.001 {
		t.Errorf("percent shares sum to %v, expected 100", sum)
	}
	if result.Busiest == nil || result.Busiest.ID != "g3" {
		t.Errorf("Busiest = %+v, expected g3", result.Busiest)
	}
	// Mon has a 1h gap; Wed is a single interval so its 0 gap is below 30m; Tue is empty
	if result.FlaggedGroups != 1 {
		t.Errorf("FlaggedGroups = %d, expected 1", result.FlaggedGroups)
	}
}

func TestStatsService_ForAnalysis_Empty(t *testing.T) {
	a := NewAnalysisService(config.DefaultConfig()).AnalyzeRows(nil, testDay)
	result := NewStatsService().ForAnalysis(a)

	if result.Busiest != nil {
		t.Errorf("Busiest = %+v, expected nil", result.Busiest)
	}
	if result.Activities == nil || len(result.Activities) != 0 {
		t.Errorf("Activities = %v, expected empty slice", result.Activities)
	}
}
