package core

import (
	"errors"
	"testing"
)

func TestMatrix4_Multiply(t *testing.T) {
	a := NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	})
	b := NewMatrix4([4][4]float64{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	})
	expected := NewMatrix4([4][4]float64{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	})

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix4_MultiplyTuple(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	})
	result := m.MultiplyTuple(NewTuple(1, 2, 3, 1))
	if !result.Equals(NewTuple(18, 24, 33, 1)) {
		t.Errorf("Expected (18,24,33,1), got %v", result)
	}
}

func TestMatrix4_IdentityIsNeutral(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	})
	if got := m.Multiply(Identity()); !got.Equals(m) {
		t.Errorf("Expected m unchanged, got %v", got)
	}

	tup := NewTuple(1, 2, 3, 4)
	if got := Identity().MultiplyTuple(tup); !got.Equals(tup) {
		t.Errorf("Expected tuple unchanged, got %v", got)
	}
}

func TestMatrix4_Transpose(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	})
	expected := NewMatrix4([4][4]float64{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	})
	if got := m.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("Transpose of identity should be identity, got %v", got)
	}
}

func TestMatrix4_Determinant(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	})
	if got := m.Determinant(); !NearlyEqual(got, -4071) {
		t.Errorf("Expected determinant -4071, got %f", got)
	}
}

func TestMatrix4_Inverse(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	})
	expected := NewMatrix4([4][4]float64{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	})

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !inv.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, inv)
	}
}

func TestMatrix4_InverseRoundTrip(t *testing.T) {
	a := NewMatrix4([4][4]float64{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	})
	b := NewMatrix4([4][4]float64{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	})

	// Multiplying a product by an inverse undoes the multiplication.
	c := a.Multiply(b)
	bInv, err := b.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := c.Multiply(bInv); !got.Equals(a) {
		t.Errorf("Expected a, got %v", got)
	}

	// m * inverse(m) is the identity.
	aInv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := a.Multiply(aInv); !got.Equals(Identity()) {
		t.Errorf("Expected identity, got %v", got)
	}
}

func TestMatrix4_InverseSingular(t *testing.T) {
	singular := NewMatrix4([4][4]float64{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	})
	if _, err := singular.Inverse(); !errors.Is(err, ErrNonInvertibleMatrix) {
		t.Errorf("Expected ErrNonInvertibleMatrix, got %v", err)
	}
}
