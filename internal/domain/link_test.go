package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRating(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{4.5, "4.5"},
		{5, "5.0"},
		{math.NaN(), "0.0"},
		{math.Inf(1), "0.0"},
		{3.14159, "3.1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Link{Rating: tt.rating}.FormatRating())
		})
	}
}

func TestNewDataset_FillsCategoryName(t *testing.T) {
	links := []Link{
		{ID: "1", CategoryID: "tools"},
		{ID: "2", CategoryID: "tools", CategoryName: "Custom"},
		{ID: "3", CategoryID: "missing"},
	}
	cats := []Category{{ID: "tools", Name: "Herramientas"}}

	ds := NewDataset(links, cats)

	assert.Equal(t, "Herramientas", ds.Links[0].CategoryName)
	assert.Equal(t, "Custom", ds.Links[1].CategoryName)
	assert.Equal(t, "", ds.Links[2].CategoryName)
	assert.Equal(t, "", links[0].CategoryName, "input must not be modified")
}

func TestDataset_LinkByID(t *testing.T) {
	ds := NewDataset([]Link{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, nil)

	l, ok := ds.LinkByID("b")
	assert.True(t, ok)
	assert.Equal(t, "B", l.Name)

	_, ok = ds.LinkByID("c")
	assert.False(t, ok)
}

func TestDataset_CategoryCounts(t *testing.T) {
	ds := NewDataset([]Link{
		{ID: "1", CategoryID: "a"},
		{ID: "2", CategoryID: "b"},
		{ID: "3", CategoryID: "a"},
	}, []Category{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	counts := ds.CategoryCounts()

	assert.Equal(t, 2, counts["a"])
	assert.Equal(t, 1, counts["b"])
	assert.Equal(t, 0, counts["c"])
}
