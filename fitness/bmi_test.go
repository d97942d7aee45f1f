// SPDX-License-Identifier: GPL-3.0-only

package fitness

import (
	"math"
	"testing"
)

func TestBMI(t *testing.T) {
	if bmi := BMI(70, 1.70); math.Abs(bmi-24.2214) > 0.001 {
		t.Errorf("Expected BMI 24.2214, got %v", bmi)
	}
}

func TestAdvice(t *testing.T) {
	cases := []struct {
		weight   float64
		height   float64
		category Category
	}{
		{50, 1.70, Underweight}, // BMI 17.30
		{60, 1.70, Normal},      // BMI 20.76
		{90, 1.70, Overweight},  // BMI 31.14
	}
	for _, c := range cases {
		category, message := Advice(c.weight, c.height)
		if category != c.category {
			t.Errorf("Advice(%v, %v): expected %s, got %s", c.weight, c.height, c.category, category)
		}
		if message != adviceByCategory[c.category] {
			t.Errorf("Advice(%v, %v): unexpected message %q", c.weight, c.height, message)
		}
	}
}

func TestCategorizeBoundaries(t *testing.T) {
	// Lower bounds are inclusive: 18.5 is Normal, 24.9 is Overweight.
	if got := Categorize(18.5); got != Normal {
		t.Errorf("BMI 18.5 should be Normal, got %s", got)
	}
	if got := Categorize(18.499); got != Underweight {
		t.Errorf("BMI 18.499 should be Underweight, got %s", got)
	}
	if got := Categorize(24.9); got != Overweight {
		t.Errorf("BMI 24.9 should be Overweight, got %s", got)
	}
	if got := Categorize(24.899); got != Normal {
		t.Errorf("BMI 24.899 should be Normal, got %s", got)
	}
}

func TestBMISeries(t *testing.T) {
	series := BMISeries([]float64{50, 60, 90}, 1.70)
	if len(series) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(series))
	}
	if series[0] >= series[1] || series[1] >= series[2] {
		t.Errorf("Series should grow with weight, got %v", series)
	}
	if math.Abs(series[1]-BMI(60, 1.70)) > 1e-9 {
		t.Errorf("Point 1 should equal BMI(60, 1.70), got %v", series[1])
	}

	if empty := BMISeries(nil, 1.70); len(empty) != 0 {
		t.Errorf("Expected empty series, got %v", empty)
	}
}
