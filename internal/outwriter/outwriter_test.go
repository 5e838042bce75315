package outwriter

import (
	"testing"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxTablePathWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow override clamps to minimum", 40, 15},
		{"wide terminal clamps to maximum", 120, 70},
		{"standard 80 columns", 80, 35},
		{"override just past the base", 61, 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GetMaxTablePathWidth(&contract.Config{Width: tc.width})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDominantLabel(t *testing.T) {
	tests := []struct {
		name   string
		labels map[schema.Label]int
		want   schema.Label
	}{
		{"clear winner", map[schema.Label]int{schema.LabelFix: 5, schema.LabelFeat: 2}, schema.LabelFix},
		{"tie picks the smaller label", map[schema.Label]int{schema.LabelFix: 3, schema.LabelFeat: 3}, schema.LabelFeat},
		{"single entry", map[schema.Label]int{schema.LabelDocs: 1}, schema.LabelDocs},
		{"empty map", map[schema.Label]int{}, schema.Label("")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dominantLabel(tc.labels))
		})
	}
}
