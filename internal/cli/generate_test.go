package cli

import (
	"testing"

	"github.com/patelnav/fcpsub/internal/fcpxml"
)

func TestNearestFrameRate(t *testing.T) {
	tests := []struct {
		fps  float64
		want fcpxml.FrameRate
	}{
		{23.976023976, fcpxml.FrameRate23_976},
		{24.0, fcpxml.FrameRate24},
		{25.0, fcpxml.FrameRate25},
		{29.97002997, fcpxml.FrameRate29_97},
		{30.0, fcpxml.FrameRate30},
		{50.0, fcpxml.FrameRate50},
		{59.94005994, fcpxml.FrameRate59_94},
		{60.0, fcpxml.FrameRate60},

		// probed rates rarely land exactly on a standard rate
		{29.5, fcpxml.FrameRate29_97},
		{24.5, fcpxml.FrameRate24},
		{61.2, fcpxml.FrameRate60},
		{15.0, fcpxml.FrameRate23_976},
	}

	for _, tt := range tests {
		got := nearestFrameRate(tt.fps)
		if got != tt.want {
			t.Errorf("nearestFrameRate(%v) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}
