package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♥", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "10♦", Card{Rank: 10, Suit: Diamonds}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♦", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())

	assert.PanicsWithValue(t, "unknown suit: stars", func() {
		_ = Card{Rank: 2, Suit: "stars"}.String()
	})
}

func TestCard_FaceValue(t *testing.T) {
	a := assert.New(t)
	for rank := 2; rank <= 10; rank++ {
		a.Equal(uint64(rank), Card{Rank: rank, Suit: Clubs}.FaceValue())
	}

	a.Equal(uint64(10), Card{Rank: Jack, Suit: Clubs}.FaceValue())
	a.Equal(uint64(10), Card{Rank: Queen, Suit: Clubs}.FaceValue())
	a.Equal(uint64(10), Card{Rank: King, Suit: Clubs}.FaceValue())
	a.Equal(uint64(11), Card{Rank: Ace, Suit: Clubs}.FaceValue())
}

func TestCard_Equality(t *testing.T) {
	assert.Equal(t, MustCardFromString("7c"), MustCardFromString("7C"))
	assert.NotEqual(t, MustCardFromString("7c"), MustCardFromString("7d"))
	assert.True(t, MustCardFromString("14s") == Card{Rank: Ace, Suit: Spades})
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromString("14s")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	card, err = CardFromString("as")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	card, err = CardFromString("10h")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Hearts}, card)

	card, err = CardFromString(" qd ")
	a.NoError(err)
	a.Equal(Card{Rank: Queen, Suit: Diamonds}, card)

	for _, bad := range []string{"", "1c", "15c", "0d", "10x", "zz", "10"} {
		_, err = CardFromString(bad)
		a.Error(err, bad)
	}

	a.Panics(func() {
		MustCardFromString("nope")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromString("2c,11d,14h")
	a.NoError(err)
	a.Equal([]Card{{Rank: 2, Suit: Clubs}, {Rank: Jack, Suit: Diamonds}, {Rank: Ace, Suit: Hearts}}, cards)

	cards, err = CardsFromString("")
	a.NoError(err)
	a.Empty(cards)

	_, err = CardsFromString("2c,bad")
	a.EqualError(err, `could not parse card: "bad"`)
}

func TestCardsToString(t *testing.T) {
	assert.Equal(t, "2c,11d,14h,10s", CardsToString(MustCardsFromString("2c,jd,ah,10s")))
	assert.Equal(t, "", CardsToString(nil))
}
