package weekset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplan/timetable-engine/internal/weekset"
)

func TestFromSpec_All(t *testing.T) {
	s, err := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeAll})
	require.NoError(t, err)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(16))
	assert.False(t, s.Contains(17))
}

func TestFromSpec_List_RoundTrip(t *testing.T) {
	values := []int{2, 5, 9, 16}
	s, err := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeList, Values: values})
	require.NoError(t, err)
	assert.Equal(t, values, s.ToSortedList())
}

func TestFromSpec_Ranges(t *testing.T) {
	s, err := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeRanges, Ranges: []string{"1-8"}})
	require.NoError(t, err)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(8))
	assert.False(t, s.Contains(9))
}

func TestFromSpec_Ranges_OutOfBounds(t *testing.T) {
	_, err := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeRanges, Ranges: []string{"10-20"}})
	assert.Error(t, err)
}

func TestIntersects(t *testing.T) {
	a, _ := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeRanges, Ranges: []string{"1-8"}})
	b, _ := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeRanges, Ranges: []string{"9-16"}})
	assert.False(t, a.Intersects(b))

	c, _ := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeRanges, Ranges: []string{"8-16"}})
	assert.True(t, a.Intersects(c))
}

func TestUnion(t *testing.T) {
	a, _ := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeList, Values: []int{1, 2}})
	b, _ := weekset.FromSpec(16, weekset.Spec{Mode: weekset.ModeList, Values: []int{2, 3}})
	u := a.Union(b)
	assert.Equal(t, []int{1, 2, 3}, u.ToSortedList())
}

func TestUnknownMode(t *testing.T) {
	_, err := weekset.FromSpec(16, weekset.Spec{Mode: "bogus"})
	assert.Error(t, err)
}

func TestIsEmpty(t *testing.T) {
	s := weekset.New(16)
	assert.True(t, s.IsEmpty())
	full := weekset.All(16)
	assert.False(t, full.IsEmpty())
}

func TestCrossWordBoundary(t *testing.T) {
	s, err := weekset.FromSpec(130, weekset.Spec{Mode: weekset.ModeList, Values: []int{1, 64, 65, 128, 130}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 64, 65, 128, 130}, s.ToSortedList())
}
