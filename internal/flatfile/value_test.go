package flatfile

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{
			name: "digit-only string becomes an int",
			raw:  "42",
			want: 42,
		},
		{
			name: "partial number stays text",
			raw:  "42a",
			want: "42a",
		},
		{
			name: "negative number stays text",
			raw:  "-42",
			want: "-42",
		},
		{
			name: "canonical date becomes a Date",
			raw:  "2024-06-01",
			want: Date{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "date-shaped junk stays text",
			raw:  "2024-13-45",
			want: "2024-13-45",
		},
		{
			name: "canonical clock value becomes a Clock",
			raw:  "20:30",
			want: Clock{time.Date(0, 1, 1, 20, 30, 0, 0, time.UTC)},
		},
		{
			name: "clock-shaped junk stays text",
			raw:  "99:99",
			want: "99:99",
		},
		{
			name: "empty cell stays empty text",
			raw:  "",
			want: "",
		},
		{
			name: "plain text passes through",
			raw:  "Inception",
			want: "Inception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.raw)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseValue(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestRenderValueInvertsParseValue(t *testing.T) {
	for _, raw := range []string{"42", "2024-06-01", "20:30", "A1,A2,A3", ""} {
		if got := RenderValue(ParseValue(raw)); got != raw {
			t.Errorf("RenderValue(ParseValue(%q)) = %q", raw, got)
		}
	}
}

func TestRenderValueNil(t *testing.T) {
	if got := RenderValue(nil); got != "" {
		t.Errorf("RenderValue(nil) = %q, want empty", got)
	}
}
