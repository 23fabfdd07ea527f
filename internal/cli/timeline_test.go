package cli

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/xolan/worklog/internal/interval"
	"github.com/xolan/worklog/internal/timeline"
)

func TestBarCells(t *testing.T) {
	tests := []struct {
		name       string
		positions  []timeline.Position
		width      int
		wantCounts []int
		wantOwners []int
	}{
		{
			name:       "single interval",
			positions:  []timeline.Position{{Offset: 0.25, Width: 0.5}},
			width:      8,
			wantCounts: []int{0, 0, 1, 1, 1, 1, 0, 0},
			wantOwners: []int{-1, -1, 0, 0, 0, 0, -1, -1},
		},
		{
			name:       "overlap",
			positions:  []timeline.Position{{Offset: 0, Width: 0.5}, {Offset: 0.25, Width: 0.5}},
			width:      4,
			wantCounts: []int{1, 2, 1, 0},
			wantOwners: []int{0, 1, 1, -1},
		},
		{
			name:       "tiny interval still shows",
			positions:  []timeline.Position{{Offset: 0.5, Width: 0.001}},
			width:      4,
			wantCounts: []int{0, 0, 1, 0},
			wantOwners: []int{-1, -1, 0, -1},
		},
		{
			name:       "interval at the very end",
			positions:  []timeline.Position{{Offset: 1, Width: 0.0001}},
			width:      4,
			wantCounts: []int{0, 0, 0, 1},
			wantOwners: []int{-1, -1, -1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, owners := BarCells(tt.positions, tt.width)
			if !reflect.DeepEqual(counts, tt.wantCounts) {
				t.Errorf("counts = %v, want %v", counts, tt.wantCounts)
			}
			if !reflect.DeepEqual(owners, tt.wantOwners) {
				t.Errorf("owners = %v, want %v", owners, tt.wantOwners)
			}
		})
	}
}

func TestBarCells_ZeroWidth(t *testing.T) {
	counts, owners := BarCells([]timeline.Position{{Offset: 0, Width: 1}}, 0)
	if counts != nil || owners != nil {
		t.Errorf("expected nil cells for zero width, got %v %v", counts, owners)
	}
}

func TestRenderBar(t *testing.T) {
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	ivs := interval.ParseAt("(09:00-11:00)(10:00-13:00)", "dev", day)
	positions := []timeline.Position{{Offset: 0, Width: 0.5}, {Offset: 0.25, Width: 0.5}}

	bar := RenderBar(positions, ivs, 4)

	if strings.Count(bar, CellFilled) != 2 {
		t.Errorf("expected 2 filled cells in %q", bar)
	}
	if strings.Count(bar, CellOverlap) != 1 {
		t.Errorf("expected 1 overlap cell in %q", bar)
	}
	if strings.Count(bar, CellEmpty) != 1 {
		t.Errorf("expected 1 empty cell in %q", bar)
	}
}
