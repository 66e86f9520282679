package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Spades}, d.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Diamonds}, d.Cards[51])
	a.Equal(int64(-1), d.GetSeed())

	seen := make(map[Card]bool)
	for _, c := range d.Cards {
		seen[c] = true
	}
	a.Len(seen, 52)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.Shuffle(1)
	d2 := New()
	d2.Shuffle(1)

	a.Equal(int64(1), d1.GetSeed())
	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(New().HashCode(), d1.HashCode())
	a.Equal(52, d1.CardsLeft())

	d3 := New()
	d3.Shuffle(2)
	a.NotEqual(d1.HashCode(), d3.HashCode())

	a.PanicsWithValue("seed cannot be < 0", func() {
		New().Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	assert.True(t, d.CanDraw(52))
	assert.False(t, d.CanDraw(53))

	for i := 0; i < 52; i++ {
		_, err := d.Draw()
		assert.NoError(t, err)
	}

	assert.False(t, d.CanDraw(1))

	card, err := d.Draw()
	assert.Equal(t, Card{}, card)
	assert.ErrorIs(t, err, ErrEndOfDeck)
}

func TestFromCards(t *testing.T) {
	cards := MustCardsFromString("2c,3c")
	d := FromCards(cards)
	cards[0] = MustCardFromString("14s")

	card, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, MustCardFromString("2c"), card)
	assert.Equal(t, 1, d.CardsLeft())
}
