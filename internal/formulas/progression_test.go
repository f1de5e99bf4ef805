package formulas

import (
	"errors"
	"testing"
)

func TestKForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 4},
		{9, 4},
		{10, 126},
		{19, 126},
		{20, 358},
		{45, 1012},
		{59, 1414},
		{69, 1859},
		{79, 2343},
		{89, 2862},
		{90, 3415},
		{99, 3415},
		{100, 4000},
		{101, 4000}, // past the table clamps to the top bracket
		{500, 4000},
	}
	for _, tt := range tests {
		got, err := KForLevel(tt.level)
		if err != nil {
			t.Fatalf("KForLevel(%d) error: %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("KForLevel(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestKForLevelInvalid(t *testing.T) {
	for _, level := range []int{0, -1, -50} {
		if _, err := KForLevel(level); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("KForLevel(%d) err = %v, want ErrInvalidLevel", level, err)
		}
	}
}
