package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"japanese tags and plain token", "#梨 #スイカ,肥料", []string{"#梨", "#スイカ"}},
		{"bare marker dropped", "# #剪定", []string{"#剪定"}},
		{"mixed separators", "#a,#b\t#c\n#d", []string{"#a", "#b", "#c", "#d"}},
		{"full-width space separator", "#梨　#スイカ", []string{"#梨", "#スイカ"}},
		{"duplicates removed, order kept", "#b #a #b", []string{"#b", "#a"}},
		{"case sensitive", "#Pear #pear", []string{"#Pear", "#pear"}},
		{"no tags", "ただのメモ, 剪定", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.in))
		})
	}
}

func TestFacet(t *testing.T) {
	got := Facet([]string{"#梨 #剪定", "", "#スイカ #剪定", "肥料"})
	assert.Equal(t, []string{"#スイカ", "#剪定", "#梨"}, got)
}

func TestFacetEmpty(t *testing.T) {
	assert.Empty(t, Facet(nil))
	assert.Empty(t, Facet([]string{"", "no tags here"}))
}
