package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = Table{
	{Lo: 'a', Hi: 'z', Base: 0, Stride: 1},
	{Lo: 0x0100, Hi: 0x017F, Base: 26, Stride: 2},
	Block(0x0430, 0x045F,
		Range{Lo: 0x0430, Hi: 0x044F, Base: 0, Stride: 1},
		Range{Lo: 0x0450, Hi: 0x0455, Base: 32, Stride: 1},
	),
	Single(0x1D2B, 100),
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
		ok   bool
	}{
		{"first", 'a', 0, true},
		{"last ascii", 'z', 25, true},
		{"below", '`', 0, false},
		{"above ascii", '{', 0, false},
		{"stride 2 even", 0x0100, 26, true},
		{"stride 2 odd", 0x0101, 26, true},
		{"stride 2 next pair", 0x0102, 27, true},
		{"stride 2 end", 0x017F, 26 + 0x7F/2, true},
		{"child first", 0x0430, 0, true},
		{"child second", 0x0451, 33, true},
		{"parent gap", 0x0456, 0, false},
		{"single", 0x1D2B, 100, true},
		{"single neighbour", 0x1D2C, 0, false},
		{"negative", -1, 0, false},
		{"max rune", 0x10FFFF, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := testTable.Lookup(tt.r)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	tbl := Table{
		{Lo: 0x10, Hi: 0x20, Base: 0, Stride: 1},
		{Lo: 0x18, Hi: 0x18, Base: 99, Stride: 1},
	}
	got, ok := tbl.Lookup(0x18)
	require.True(t, ok)
	assert.Equal(t, 8, got)
	assert.Equal(t, []int{1}, tbl.Shadowed())
}

func TestParentMatchIsFinal(t *testing.T) {
	tbl := Table{
		Block(0x100, 0x1FF, Single(0x150, 7)),
		{Lo: 0x100, Hi: 0x1FF, Base: 0, Stride: 1},
	}
	_, ok := tbl.Lookup(0x151)
	assert.False(t, ok, "a matching parent must not fall through to later entries")
	got, ok := tbl.Lookup(0x150)
	require.True(t, ok)
	assert.Equal(t, 7, got)
}

func TestMax(t *testing.T) {
	assert.Equal(t, -1, Table(nil).Max())
	assert.Equal(t, 100, testTable.Max())
	assert.Equal(t, 25, Table{{Lo: 'a', Hi: 'z', Stride: 1}}.Max())
	assert.Equal(t, 26+0x7F/2, Table{{Lo: 0x0100, Hi: 0x017F, Base: 26, Stride: 2}}.Max())
}

func TestValidate(t *testing.T) {
	require.NoError(t, testTable.Validate())

	tests := []struct {
		name string
		tbl  Table
	}{
		{"inverted", Table{{Lo: 'z', Hi: 'a', Stride: 1}}},
		{"negative", Table{{Lo: -5, Hi: 'a', Stride: 1}}},
		{"zero stride", Table{{Lo: 'a', Hi: 'z'}}},
		{"stride 3", Table{{Lo: 'a', Hi: 'z', Stride: 3}}},
		{"negative base", Table{{Lo: 'a', Hi: 'z', Base: -1, Stride: 1}}},
		{"child outside", Table{Block(0x100, 0x1FF, Single(0x200, 0))}},
		{"bad child", Table{Block(0x100, 0x1FF, Range{Lo: 0x100, Hi: 0x110})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.tbl.Validate())
		})
	}
}

func TestShadowed(t *testing.T) {
	assert.Empty(t, testTable.Shadowed())

	tbl := Table{
		{Lo: 0x10, Hi: 0x1F, Stride: 1},
		{Lo: 0x20, Hi: 0x2F, Stride: 1},
		{Lo: 0x18, Hi: 0x28, Stride: 1}, // spans both
		{Lo: 0x28, Hi: 0x30, Stride: 1}, // 0x30 still reachable
	}
	assert.Equal(t, []int{2}, tbl.Shadowed())
}

func BenchmarkLookup(b *testing.B) {
	inputs := []rune{'a', 0x017F, 0x0451, 0x1D2B, 0x4E00}
	for i := 0; i < b.N; i++ {
		for _, r := range inputs {
			testTable.Lookup(r)
		}
	}
}
