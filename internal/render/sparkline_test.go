package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparklineEmpty(t *testing.T) {
	r := testRenderer()

	assert.Empty(t, r.Sparkline(nil, 10))
	assert.Empty(t, r.Sparkline([]float64{1, 2, 3}, 0))
	assert.Empty(t, r.Sparkline([]float64{1, 2, 3}, -5))
}

func TestSparklineLength(t *testing.T) {
	r := testRenderer()

	tests := []struct {
		name    string
		data    []float64
		width   int
		wantLen int
	}{
		{"fewer points than width", []float64{1, 2, 3}, 10, 3},
		{"exactly width", []float64{1, 2, 3, 4, 5}, 5, 5},
		{"truncates to most recent", []float64{1, 2, 3, 4, 5, 6, 7, 8}, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := stripANSI(r.Sparkline(tt.data, tt.width))
			assert.Len(t, []rune(plain), tt.wantLen)
		})
	}
}

func TestSparklineShape(t *testing.T) {
	r := testRenderer()

	t.Run("constant series sits mid level", func(t *testing.T) {
		plain := stripANSI(r.Sparkline([]float64{50, 50, 50}, 10))
		assert.Equal(t, "▅▅▅", plain)
	})

	t.Run("rising series ends at the top block", func(t *testing.T) {
		plain := stripANSI(r.Sparkline([]float64{0, 25, 50, 75, 100}, 10))
		runes := []rune(plain)
		assert.Equal(t, '▁', runes[0])
		assert.Equal(t, '█', runes[len(runes)-1])
	})

	t.Run("keeps the tail of a long series", func(t *testing.T) {
		// First values are all high; only the low tail should remain
		plain := stripANSI(r.Sparkline([]float64{100, 100, 100, 10, 10}, 2))
		assert.Equal(t, "▅▅", plain, "constant tail maps to the middle block")
	})
}

func TestSparklineColorTracksLastValue(t *testing.T) {
	r := testRenderer()

	tests := []struct {
		name string
		data []float64
		want string
	}{
		{"low current value is green", []float64{90, 90, 30}, ansiSuccess},
		{"warning current value is yellow", []float64{10, 10, 70}, ansiWarning},
		{"high current value is red", []float64{10, 10, 95}, ansiError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, r.Sparkline(tt.data, 10), tt.want)
		})
	}
}
