package window

import (
	"testing"

	"github.com/vovakirdan/maze3d/internal/core"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		kb   core.InputState
		pads []PadReading
		want core.InputState
	}{
		{
			name: "keyboard only",
			kb:   core.InputState{Up: true},
			want: core.InputState{Up: true},
		},
		{
			name: "buttons are ORed",
			kb:   core.InputState{Left: true},
			pads: []PadReading{{Buttons: core.InputState{Confirm: true}}},
			want: core.InputState{Left: true, Confirm: true},
		},
		{
			name: "strongest stick wins",
			pads: []PadReading{
				{StickX: 0.3},
				{StickX: -0.1, StickY: -0.9},
			},
			want: core.InputState{StickX: -0.1, StickY: -0.9},
		},
		{
			name: "stick is clamped",
			pads: []PadReading{{StickX: 1.5}},
			want: core.InputState{StickX: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.kb, tt.pads...); got != tt.want {
				t.Errorf("Merge() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}
