package ui

import "testing"

func TestToggleLabels(t *testing.T) {
	tests := []struct {
		label func(bool) string
		on    bool
		want  string
	}{
		{squishLabel, true, "Squish: on"},
		{squishLabel, false, "Squish: off"},
		{shadowLabel, true, "Shadow: on"},
		{shadowLabel, false, "Shadow: off"},
	}
	for _, tt := range tests {
		if got := tt.label(tt.on); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
