package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck-building order
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Symbol returns the single-character symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %s", string(s)))
	}
}

// Card is an individual playing card.
// Cards are compared structurally, two cards with the same rank and suit are the same card.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// RankLabel returns the printed rank of the card (2-10, J, Q, K, A)
func (c Card) RankLabel() string {
	switch c.Rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(c.Rank)
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.RankLabel(), c.Suit.Symbol())
}

// FaceValue returns the chips a card is worth when it scores.
// Aces are worth 11, face cards 10 and everything else their rank.
func (c Card) FaceValue() uint64 {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return uint64(c.Rank)
	}
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[jqka])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-14 (or J, Q, K, A) and suit in [cdhs]
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	var rank int
	switch strings.ToLower(match[1]) {
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		// the regexp only allows digits here
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustCardFromString is like CardFromString but panics if the card can't be parsed.
// Intended for tests and constants.
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will return a slice of cards from a string in the format of 2c,3h,4s,...
func CardsFromString(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := CardFromString(cs)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCardsFromString is like CardsFromString but panics on a parse failure
func MustCardsFromString(s string) []Card {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
