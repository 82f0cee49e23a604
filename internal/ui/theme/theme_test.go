package theme

import (
	"image/color"
	"testing"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   color.Color
	}{
		{"running", Success},
		{"evaluating", Secondary},
		{"remediation", Secondary},
		{"paused_for_teacher", Warning},
		{"completed", Primary},
		{"stopped", Error},
		{"initialized", TextDim},
		{"", TextDim},
	}

	for _, tt := range tests {
		var got color.Color = StatusColor(tt.status)
		if got != tt.want {
			t.Errorf("StatusColor(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
