package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_ContainsPoint(t *testing.T) {
	r := NewRing(100, 100, 50, nil, 0)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "center", x: 100, y: 100, want: true},
		{name: "just inside on axis", x: 149.999, y: 100, want: true},
		{name: "exactly on boundary", x: 150, y: 100, want: false},
		{name: "just outside on axis", x: 150.001, y: 100, want: false},
		{name: "inside off axis", x: 130, y: 130, want: true},
		{name: "outside off axis", x: 140, y: 140, want: false},
		{name: "boundary below center", x: 100, y: 150, want: false},
		{name: "far away", x: -100, y: -100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ContainsPoint(tt.x, tt.y))
		})
	}
}

func TestRing_ContainsPointIgnoresRotation(t *testing.T) {
	r := NewRing(0, 0, 10, nil, 0)
	assert.True(t, r.ContainsPoint(5, 5))

	r.Rotation = 123.456
	assert.True(t, r.ContainsPoint(5, 5), "rotation must not affect containment")
}
