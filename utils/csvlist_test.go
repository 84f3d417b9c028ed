package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"Solar", "Wind"}, SplitList(" Solar , Wind "))
	assert.Equal(t, []string{"Solar"}, SplitList("Solar"))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", JoinList(nil))
	assert.Equal(t, "Solar,Wind", JoinList([]string{" Solar ", "", "Wind"}))
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, "Solar,Wind,Hydro", NormalizeList("Solar, Wind ,Hydro,"))
	assert.Equal(t, "", NormalizeList("  ,  "))
}

func TestListToSet(t *testing.T) {
	set := ListToSet("Solar, WIND")
	_, hasSolar := set["solar"]
	_, hasWind := set["wind"]
	_, hasUpper := set["Solar"]
	assert.True(t, hasSolar)
	assert.True(t, hasWind)
	assert.False(t, hasUpper)
	assert.Len(t, set, 2)

	assert.Empty(t, ListToSet(""))
}
