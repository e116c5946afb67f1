//go:build linux || freebsd || openbsd || netbsd
// +build linux freebsd openbsd netbsd

package display

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/xgb/randr"
)

func TestOrderOutputs(t *testing.T) {
	outputs := []randr.Output{10, 20, 30}

	tests := []struct {
		name    string
		primary randr.Output
		want    []randr.Output
	}{
		{"no primary", 0, []randr.Output{10, 20, 30}},
		{"primary already first", 10, []randr.Output{10, 20, 30}},
		{"primary in middle", 20, []randr.Output{20, 10, 30}},
		{"primary last", 30, []randr.Output{30, 10, 20}},
		{"stale primary", 99, []randr.Output{10, 20, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderOutputs(tt.primary, outputs); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("orderOutputs(%v) = %v, want %v", tt.primary, got, tt.want)
			}
		})
	}
}

func TestModeWidth(t *testing.T) {
	modes := []randr.ModeInfo{
		{Id: 1, Width: 1920},
		{Id: 2, Width: 3840},
	}

	tests := []struct {
		name string
		mode randr.Mode
		want int
	}{
		{"known mode", randr.Mode(2), 3840},
		{"another known mode", randr.Mode(1), 1920},
		{"unknown mode", randr.Mode(7), 0},
		{"mode disabled", randr.Mode(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeWidth(modes, tt.mode); got != tt.want {
				t.Errorf("modeWidth(%v) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}
