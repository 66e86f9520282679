package joker

import (
	"fmt"

	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/poker"
)

// Jimbo is the plain Joker, +4 Mult on every hand
type Jimbo struct{}

// Name returns "Joker"
func (j *Jimbo) Name() string {
	return DefaultName
}

// Description returns the description
func (j *Jimbo) Description() string {
	return "+4 Mult"
}

// EndOfRound adds 4 to the multiplier
func (j *Jimbo) EndOfRound(_ *Played, score *Score) {
	score.Mult += 4
}

// SuitMult adds to the multiplier for every scoring card of a suit
type SuitMult struct {
	name   string
	suit   deck.Suit
	amount uint64
}

// Name returns the name
func (s *SuitMult) Name() string {
	return s.name
}

// Description returns the description
func (s *SuitMult) Description() string {
	return fmt.Sprintf("Played cards with %s%s suit give +%d Mult when scored", s.suit.Symbol(), suitLabel(s.suit), s.amount)
}

// OnScore adds to the multiplier if the card matches the suit
func (s *SuitMult) OnScore(card deck.Card, score *Score) {
	if card.Suit == s.suit {
		score.Mult += s.amount
	}
}

// HandMult adds to the multiplier if the scoring cards contain a hand
type HandMult struct {
	name   string
	hand   poker.Hand
	amount uint64
}

// Name returns the name
func (h *HandMult) Name() string {
	return h.name
}

// Description returns the description
func (h *HandMult) Description() string {
	return fmt.Sprintf("+%d Mult if played hand contains a %s", h.amount, h.hand)
}

// EndOfRound adds to the multiplier if the scoring cards contain the hand
func (h *HandMult) EndOfRound(played *Played, score *Score) {
	if played.ScoredHand().Contains(h.hand) {
		score.Mult += h.amount
	}
}

// HandChips adds chips if the scoring cards contain a hand
type HandChips struct {
	name   string
	hand   poker.Hand
	amount uint64
}

// Name returns the name
func (h *HandChips) Name() string {
	return h.name
}

// Description returns the description
func (h *HandChips) Description() string {
	return fmt.Sprintf("+%d Chips if played hand contains a %s", h.amount, h.hand)
}

// EndOfRound adds chips if the scoring cards contain the hand
func (h *HandChips) EndOfRound(played *Played, score *Score) {
	if played.ScoredHand().Contains(h.hand) {
		score.Chips += h.amount
	}
}

func suitLabel(suit deck.Suit) string {
	switch suit {
	case deck.Clubs:
		return "Club"
	case deck.Diamonds:
		return "Diamond"
	case deck.Hearts:
		return "Heart"
	case deck.Spades:
		return "Spade"
	default:
		return string(suit)
	}
}
