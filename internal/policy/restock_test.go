package policy

import "testing"

func TestSuggestedQuantity(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		min, max int
		expected int
	}{
		{"deficit to maximum", 5, 15, 40, 35},
		{"minimum order floor binding", 8, 10, 12, 10},
		{"empty shelf", 0, 20, 100, 100},
		{"inverted min/max tolerated", 5, 40, 15, 35},
		{"already full still suggests floor", 50, 10, 50, 10},
		{"overstocked still suggests floor", 80, 10, 50, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := product(tt.stock, tt.min, tt.max, "1.00")
			if got := SuggestedQuantity(p); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSuggestedQuantity_Floor(t *testing.T) {
	for stock := 0; stock <= 60; stock++ {
		for minLevel := 0; minLevel <= 20; minLevel++ {
			for maxLevel := 0; maxLevel <= 60; maxLevel += 5 {
				p := product(stock, minLevel, maxLevel, "1.00")
				if got := SuggestedQuantity(p); got < MinimumOrderQuantity {
					t.Fatalf("stock=%d min=%d max=%d: suggestion %d below floor", stock, minLevel, maxLevel, got)
				}
			}
		}
	}
}

func TestSuggestedQuantity_MonotonicInStock(t *testing.T) {
	// With min and max fixed, adding stock never raises the suggestion.
	const minLevel, maxLevel = 15, 40
	prev := SuggestedQuantity(product(0, minLevel, maxLevel, "1.00"))
	for stock := 1; stock <= 60; stock++ {
		got := SuggestedQuantity(product(stock, minLevel, maxLevel, "1.00"))
		if got > prev {
			t.Fatalf("suggestion increased from %d to %d at stock=%d", prev, got, stock)
		}
		prev = got
	}
}

func TestInitialRestockQuantity(t *testing.T) {
	if got := InitialRestockQuantity(product(5, 15, 40, "1.00")); got != 35 {
		t.Errorf("expected raw deficit 35, got %d", got)
	}
	if got := InitialRestockQuantity(product(50, 10, 50, "1.00")); got != MinimumOrderQuantity {
		t.Errorf("expected floor %d when no deficit, got %d", MinimumOrderQuantity, got)
	}
}

func TestDecrementQuantity_SaturatesAtZero(t *testing.T) {
	if got := DecrementQuantity(5); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := DecrementQuantity(0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
