package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name               string
		value, min, max, w float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, w: 0.5},
		{name: "below", value: -2, min: 0, max: 1, w: 0},
		{name: "above", value: 3, min: 0, max: 1, w: 1},
		{name: "swapped bounds", value: 3, min: 1, max: 0, w: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.value, tc.min, tc.max); got != tc.w {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.w)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values within eps to compare equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("expected distinct values to compare unequal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zero eps to fall back to default epsilon")
	}
}

func TestFinite(t *testing.T) {
	if !Finite(0) || !Finite(-3.25) {
		t.Fatal("expected ordinary values to be finite")
	}
	if Finite(math.NaN()) {
		t.Fatal("NaN reported finite")
	}
	if Finite(math.Inf(1)) || Finite(math.Inf(-1)) {
		t.Fatal("infinity reported finite")
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1) = %v, want 0", got)
	}
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %v, want -Inf", got)
	}
	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1) = %v, want NaN", got)
	}
	if got := LinearToDB(10); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
}

func TestDBToLinearRoundTrip(t *testing.T) {
	for _, v := range []float64{0.001, 0.5, 0.95, 1, 2} {
		back := DBToLinear(LinearToDB(v))
		if !NearlyEqual(back, v, 1e-12) {
			t.Fatalf("round trip %v -> %v", v, back)
		}
	}
}
