package joker

import (
	"fmt"

	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/poker"
)

// Score is the running chips and multiplier of a hand being scored.
// It is the only thing a joker is allowed to change.
type Score struct {
	Chips uint64 `json:"chips"`
	Mult  uint64 `json:"mult"`
}

func (s Score) String() string {
	return fmt.Sprintf("%d x %d", s.Chips, s.Mult)
}

// Joker is a passive ability held by the player.
// A joker reacts to a hand by also implementing any of PlayHook, ScoreHook or RoundHook.
type Joker interface {
	// Name returns the registered name of the joker
	Name() string

	// Description returns what the joker does
	Description() string
}

// PlayHook is implemented by jokers that react as soon as a hand is played,
// before any card is scored
type PlayHook interface {
	OnPlay(played *Played, score *Score)
}

// ScoreHook is implemented by jokers that react to each scoring card that is not debuffed
type ScoreHook interface {
	OnScore(card deck.Card, score *Score)
}

// RoundHook is implemented by jokers that react after every card has been scored
type RoundHook interface {
	EndOfRound(played *Played, score *Score)
}

// Played is a read-only view of the hand being scored
type Played struct {
	cards   []deck.Card
	hand    poker.Hand
	scoring []int
}

// NewPlayed returns a view of the played cards. The cards and scoring indices are copied.
func NewPlayed(cards []deck.Card, hand poker.Hand, scoring []int) *Played {
	c := make([]deck.Card, len(cards))
	copy(c, cards)

	s := make([]int, len(scoring))
	copy(s, scoring)

	return &Played{
		cards:   c,
		hand:    hand,
		scoring: s,
	}
}

// Len returns the number of cards played
func (p *Played) Len() int {
	return len(p.cards)
}

// Card returns the played card at index i
func (p *Played) Card(i int) deck.Card {
	return p.cards[i]
}

// Cards returns a copy of the played cards
func (p *Played) Cards() []deck.Card {
	c := make([]deck.Card, len(p.cards))
	copy(c, p.cards)

	return c
}

// Hand returns the hand the played cards were classified as
func (p *Played) Hand() poker.Hand {
	return p.hand
}

// Scoring returns a copy of the indices of the cards that score
func (p *Played) Scoring() []int {
	s := make([]int, len(p.scoring))
	copy(s, p.scoring)

	return s
}

// ScoredHand classifies only the scoring cards
func (p *Played) ScoredHand() poker.Hand {
	hand, _ := poker.ClassifySubset(p.cards, p.scoring)
	return hand
}

// TriggerPlay calls the joker's OnPlay hook, if it has one
func TriggerPlay(j Joker, played *Played, score *Score) bool {
	hook, ok := j.(PlayHook)
	if ok {
		hook.OnPlay(played, score)
	}

	return ok
}

// TriggerScore calls the joker's OnScore hook, if it has one
func TriggerScore(j Joker, card deck.Card, score *Score) bool {
	hook, ok := j.(ScoreHook)
	if ok {
		hook.OnScore(card, score)
	}

	return ok
}

// TriggerEndOfRound calls the joker's EndOfRound hook, if it has one
func TriggerEndOfRound(j Joker, played *Played, score *Score) bool {
	hook, ok := j.(RoundHook)
	if ok {
		hook.EndOfRound(played, score)
	}

	return ok
}
