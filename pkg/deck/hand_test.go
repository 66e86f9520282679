package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(MustCardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(MustCardFromString("3c")))
	assert.False(t, hand.HasCard(MustCardFromString("3s")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(MustCardFromString("14s"))
	h.AddCard(MustCardFromString("3c"))
	assert.Equal(t, "14s,3c", h.String())
}

func TestHand_Select(t *testing.T) {
	hand := Hand(MustCardsFromString("2c,3c,4d,5h"))
	assert.Equal(t, MustCardsFromString("5h,2c"), hand.Select([]int{3, 0}))

	assert.Panics(t, func() {
		hand.Select([]int{4})
	})
}

func TestHand_RemoveIndices(t *testing.T) {
	a := assert.New(t)

	hand := Hand(MustCardsFromString("2c,3c,4d,5h,6s"))
	a.Equal(2, hand.RemoveIndices([]int{3, 1}))
	a.Equal("2c,4d,6s", hand.String())

	// duplicates and out-of-range indices are ignored
	hand = Hand(MustCardsFromString("2c,3c,4d"))
	a.Equal(1, hand.RemoveIndices([]int{0, 0, 7, -1}))
	a.Equal("3c,4d", hand.String())
}

func TestHand_SortByRank(t *testing.T) {
	hand := Hand(MustCardsFromString("14s,2h,10c,2c"))
	hand.SortByRank()
	assert.Equal(t, "2c,2h,10c,14s", hand.String())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(MustCardsFromString("2c,3c"))
	clone := hand.Clone()
	clone[0] = MustCardFromString("14s")

	assert.Equal(t, "2c,3c", hand.String())
	assert.Equal(t, "14s,3c", clone.String())
}
