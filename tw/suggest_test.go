package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"flex", "flex", 1},
		{"fle", "flex", 0.8},
		{"night", "nacht", 0.25},
		{"p 4", "p4", 1},
		{"ab", "cd", 0},
		{"a", "ab", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity(tt.a, tt.b), 0.001)
		})
	}
}

func TestRank(t *testing.T) {
	t.Run("single strong match", func(t *testing.T) {
		got := rankSuggestions("fle", []string{"flex", "grid", "flex-row-reverse"})
		assert.Equal(t, []string{"flex"}, targets(got))
	})

	t.Run("at most six weaker matches in natural order", func(t *testing.T) {
		candidates := []string{"mt-10", "mt-2", "mt-1", "mt-3", "mt-4", "mt-5", "mt-6", "mt-8"}
		got := rankSuggestions("mt", candidates)
		assert.Len(t, got, maxSuggestions)
		assert.Equal(t, "mt-1", got[0].Target)
		assert.Equal(t, "mt-2", got[1].Target)
	})

	t.Run("below threshold", func(t *testing.T) {
		assert.Empty(t, rankSuggestions("zzz", []string{"flex", "grid"}))
	})
}

func targets(s []Suggestion) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Target
	}
	return out
}
