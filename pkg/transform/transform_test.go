package transform

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestTranslation(t *testing.T) {
	m := Translation(5, -3, 2)

	if got := m.MultiplyTuple(core.NewPoint(-3, 4, 5)); !got.Equals(core.NewPoint(2, 1, 7)) {
		t.Errorf("Expected (2,1,7), got %v", got)
	}

	inv := m.MustInverse()
	if got := inv.MultiplyTuple(core.NewPoint(-3, 4, 5)); !got.Equals(core.NewPoint(-8, 7, 3)) {
		t.Errorf("Expected (-8,7,3), got %v", got)
	}

	// Translation leaves vectors alone.
	v := core.NewVector(-3, 4, 5)
	if got := m.MultiplyTuple(v); !got.Equals(v) {
		t.Errorf("Expected vector unchanged, got %v", got)
	}
}

func TestScaling(t *testing.T) {
	m := Scaling(2, 3, 4)

	if got := m.MultiplyTuple(core.NewPoint(-4, 6, 8)); !got.Equals(core.NewPoint(-8, 18, 32)) {
		t.Errorf("Expected (-8,18,32), got %v", got)
	}
	if got := m.MultiplyTuple(core.NewVector(-4, 6, 8)); !got.Equals(core.NewVector(-8, 18, 32)) {
		t.Errorf("Expected (-8,18,32), got %v", got)
	}

	inv := m.MustInverse()
	if got := inv.MultiplyTuple(core.NewVector(-4, 6, 8)); !got.Equals(core.NewVector(-2, 2, 2)) {
		t.Errorf("Expected (-2,2,2), got %v", got)
	}

	// Scaling by a negative value reflects.
	if got := Scaling(-1, 1, 1).MultiplyTuple(core.NewPoint(2, 3, 4)); !got.Equals(core.NewPoint(-2, 3, 4)) {
		t.Errorf("Expected (-2,3,4), got %v", got)
	}
}

func TestRotations(t *testing.T) {
	halfQuarter := RotationX(math.Pi / 4)
	fullQuarter := RotationX(math.Pi / 2)
	p := core.NewPoint(0, 1, 0)

	if got := halfQuarter.MultiplyTuple(p); !got.Equals(core.NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("RotationX half quarter: got %v", got)
	}
	if got := fullQuarter.MultiplyTuple(p); !got.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("RotationX full quarter: got %v", got)
	}

	if got := RotationY(math.Pi / 2).MultiplyTuple(core.NewPoint(0, 0, 1)); !got.Equals(core.NewPoint(1, 0, 0)) {
		t.Errorf("RotationY full quarter: got %v", got)
	}
	if got := RotationZ(math.Pi / 2).MultiplyTuple(core.NewPoint(0, 1, 0)); !got.Equals(core.NewPoint(-1, 0, 0)) {
		t.Errorf("RotationZ full quarter: got %v", got)
	}
}

func TestShearing(t *testing.T) {
	tests := []struct {
		name     string
		m        core.Matrix4
		expected core.Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), core.NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), core.NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), core.NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), core.NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), core.NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), core.NewPoint(2, 3, 7)},
	}

	p := core.NewPoint(2, 3, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(p); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestChain_AppliesInSequence(t *testing.T) {
	p := core.NewPoint(1, 0, 1)

	// Individual transformations applied in sequence.
	p2 := RotationX(math.Pi / 2).MultiplyTuple(p)
	p3 := Scaling(5, 5, 5).MultiplyTuple(p2)
	p4 := Translation(10, 5, 7).MultiplyTuple(p3)
	if !p4.Equals(core.NewPoint(15, 0, 7)) {
		t.Fatalf("Expected (15,0,7), got %v", p4)
	}

	// The chain applies them in the same order.
	m := NewChain().RotateX(math.Pi / 2).Scale(5, 5, 5).Translate(10, 5, 7).Matrix()
	if got := m.MultiplyTuple(p); !got.Equals(core.NewPoint(15, 0, 7)) {
		t.Errorf("Expected (15,0,7), got %v", got)
	}

	want := Translation(10, 5, 7).Multiply(Scaling(5, 5, 5)).Multiply(RotationX(math.Pi / 2))
	if !m.Equals(want) {
		t.Errorf("Expected chained matrix to equal T*S*R")
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name         string
		from, to, up core.Tuple
		expected     core.Matrix4
	}{
		{
			name:     "default orientation",
			from:     core.NewPoint(0, 0, 0),
			to:       core.NewPoint(0, 0, -1),
			up:       core.NewVector(0, 1, 0),
			expected: core.Identity(),
		},
		{
			name:     "looking in positive z direction mirrors",
			from:     core.NewPoint(0, 0, 0),
			to:       core.NewPoint(0, 0, 1),
			up:       core.NewVector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "the view moves the world",
			from:     core.NewPoint(0, 0, 8),
			to:       core.NewPoint(0, 0, 0),
			up:       core.NewVector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: core.NewPoint(1, 3, 2),
			to:   core.NewPoint(4, -2, 8),
			up:   core.NewVector(1, 1, 0),
			expected: core.NewMatrix4([4][4]float64{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0.00000},
				{0.00000, 0.00000, 0.00000, 1.00000},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ViewTransform(tt.from, tt.to, tt.up)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestViewTransform_DegenerateInputs(t *testing.T) {
	// Eye and target coincide.
	_, err := ViewTransform(core.NewPoint(1, 1, 1), core.NewPoint(1, 1, 1), core.NewVector(0, 1, 0))
	if err == nil {
		t.Error("Expected error for coincident from and to")
	}

	// Zero up vector.
	_, err = ViewTransform(core.NewPoint(0, 0, 0), core.NewPoint(0, 0, -1), core.NewVector(0, 0, 0))
	if err == nil {
		t.Error("Expected error for zero up vector")
	}
}
