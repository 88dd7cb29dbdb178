package srt

import "testing"

func TestFramesToTimecode(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		fps    float64
		want   string
	}{
		{name: "zero", frames: 0, fps: 25, want: "00:00:00,000"},
		{name: "one second", frames: 25, fps: 25, want: "00:00:01,000"},
		{name: "half second", frames: 15, fps: 30, want: "00:00:00,500"},
		{name: "one minute", frames: 1500, fps: 25, want: "00:01:00,000"},
		{name: "one hour", frames: 90000, fps: 25, want: "01:00:00,000"},
		{name: "ntsc single frame", frames: 1, fps: 29.97, want: "00:00:00,033"},
		{name: "ntsc tenth of a second", frames: 3, fps: 29.97, want: "00:00:00,100"},
		{name: "mixed components", frames: 93785, fps: 25, want: "01:02:31,400"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FramesToTimecode(tc.frames, tc.fps)
			if got != tc.want {
				t.Errorf("FramesToTimecode(%d, %v) = %q, want %q", tc.frames, tc.fps, got, tc.want)
			}
		})
	}
}
