package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menurota/menurota/internal/domain"
)

func TestShortlist_AddKeepsOrder(t *testing.T) {
	var sl domain.Shortlist
	sl = sl.Add("c").Add("a").Add("b")
	assert.Equal(t, []string{"c", "a", "b"}, sl.DishIDs)
	assert.Equal(t, 3, sl.Len())
}

func TestShortlist_AddIsIdempotent(t *testing.T) {
	sl := domain.Shortlist{}.Add("a").Add("a")
	assert.Equal(t, 1, sl.Len())
}

func TestShortlist_Remove(t *testing.T) {
	sl := domain.Shortlist{}.Add("a").Add("b")

	out := sl.Remove("a")
	assert.False(t, out.Contains("a"))
	assert.True(t, sl.Contains("a"), "original is untouched")

	out = out.Remove("missing")
	assert.Equal(t, 1, out.Len())
}

func TestShortlist_Clear(t *testing.T) {
	sl := domain.Shortlist{}.Add("a").Add("b").Clear()
	assert.Equal(t, 0, sl.Len())
	assert.False(t, sl.Contains("a"))
}
