package metadata

import "testing"

func TestNewExifTool_MissingConfiguredBinary(t *testing.T) {
	_, err := NewExifTool("/nonexistent/exiftool-binary", discardLogger())
	if err == nil {
		t.Fatal("expected an error for a missing configured binary")
	}
}

func TestAccepted(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid with offset", value: "2025-06-01 12:00:00+0000", want: true},
		{name: "empty", value: "", want: false},
		{name: "trailing colon", value: "2025-06-01 12:00:", want: false},
		{name: "zero date", value: "0000-00-00 00:00:00", want: false},
		{name: "zero date colon form", value: "0000:00:00 00:00:00", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := accepted(tc.value); got != tc.want {
				t.Errorf("accepted(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}
