package srt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRender(t *testing.T) {
	cues := []Cue{
		{Index: 1, Start: "00:00:00,000", End: "00:00:04,000", Caption: "2025-06-01 12:00"},
		{Index: 2, Start: "00:00:04,000", End: "00:00:10,000", Caption: "[NO-DATE] b.mov"},
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:04,000\n" +
		"2025-06-01 12:00\n" +
		"\n" +
		"2\n" +
		"00:00:04,000 --> 00:00:10,000\n" +
		"[NO-DATE] b.mov\n"

	if got := Render(cues); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "xml in directory",
			input: filepath.Join("exports", "myseq.xml"),
			want:  filepath.Join("exports", "timestamps_myseq.srt"),
		},
		{
			name:  "bare filename",
			input: "cut_v2.xml",
			want:  "timestamps_cut_v2.srt",
		},
		{
			name:  "no extension",
			input: filepath.Join("a", "sequence"),
			want:  filepath.Join("a", "timestamps_sequence.srt"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OutputPath(tc.input); got != tc.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timestamps_x.srt")
	if err := os.WriteFile(path, []byte("stale content"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	cues := []Cue{{Index: 1, Start: "00:00:00,000", End: "00:00:01,000", Caption: "c"}}
	if err := WriteFile(path, cues); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(first) != Render(cues) {
		t.Errorf("file content = %q, want %q", first, Render(cues))
	}

	// Re-running on identical input yields byte-identical output.
	if err := WriteFile(path, cues); err != nil {
		t.Fatalf("second WriteFile: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(second) != string(first) {
		t.Errorf("re-run output differs: %q vs %q", second, first)
	}
}
