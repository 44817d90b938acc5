package valueobject

import (
	"testing"

	"github.com/finsight/backend/internal/domain/entity"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "below range", input: -15, expected: 0},
		{name: "zero", input: 0, expected: 0},
		{name: "in range", input: 62.5, expected: 62.5},
		{name: "upper bound", input: 100, expected: 100},
		{name: "above range", input: 266.4, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScore(tt.input); got != tt.expected {
				t.Errorf("ClampScore(%f) = %f, expected %f", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompositeScore(t *testing.T) {
	t.Run("weighted sum rounds to nearest", func(t *testing.T) {
		factors := []entity.ScoreFactor{
			{Score: 80, Weight: 0.5},
			{Score: 61, Weight: 0.5},
		}
		if got := CompositeScore(factors); got != 71 {
			t.Errorf("expected 71, got %d", got)
		}
	})

	t.Run("out-of-range factors are clamped in place", func(t *testing.T) {
		factors := []entity.ScoreFactor{
			{Score: 250, Weight: 0.5},
			{Score: -40, Weight: 0.5},
		}
		if got := CompositeScore(factors); got != 50 {
			t.Errorf("expected 50, got %d", got)
		}
		if factors[0].Score != 100 {
			t.Errorf("expected first factor clamped to 100, got %f", factors[0].Score)
		}
		if factors[1].Score != 0 {
			t.Errorf("expected second factor clamped to 0, got %f", factors[1].Score)
		}
	})

	t.Run("empty factors yield zero", func(t *testing.T) {
		if got := CompositeScore(nil); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}
