package run

import (
	"fmt"

	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/joker"
)

// Player holds the cards and jokers for a run
type Player struct {
	pile   *deck.Deck
	hand   deck.Hand
	jokers *joker.Set

	handSize     int
	maxHands     int
	maxDiscards  int
	handsLeft    int
	discardsLeft int
}

func newPlayer(opts Options) (*Player, error) {
	p := &Player{
		pile:        deck.New(),
		hand:        make(deck.Hand, 0, opts.HandSize),
		jokers:      joker.NewSet(opts.MaxJokers),
		handSize:    opts.HandSize,
		maxHands:    opts.Hands,
		maxDiscards: opts.Discards,
	}

	for _, name := range opts.Jokers {
		if err := p.jokers.Add(joker.Resolve(name)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// startRound reshuffles a full deck, deals a new hand and resets the hands and discards
func (p *Player) startRound(seed int64) {
	p.pile = deck.New()
	p.pile.Shuffle(seed)
	p.hand = p.hand[:0]
	p.deal()

	p.handsLeft = p.maxHands
	p.discardsLeft = p.maxDiscards
}

// deal draws until the hand is full or the deck runs out
func (p *Player) deal() {
	for len(p.hand) < p.handSize {
		card, err := p.pile.Draw()
		if err != nil {
			return
		}

		p.hand.AddCard(card)
	}
}

// take removes the selected cards from the hand, then refills it
func (p *Player) take(indices []int) []deck.Card {
	cards := p.hand.Select(indices)
	p.hand.RemoveIndices(indices)
	p.deal()

	return cards
}

// validateSelection checks that between one and five distinct cards in the hand were picked
func (p *Player) validateSelection(indices []int) error {
	if len(indices) < 1 || len(indices) > maxSelection {
		return fmt.Errorf("%w: select between 1 and %d cards", ErrInvalidSelection, maxSelection)
	}

	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(p.hand) {
			return fmt.Errorf("%w: no card at %d", ErrInvalidSelection, idx)
		}

		if seen[idx] {
			return fmt.Errorf("%w: card %d selected twice", ErrInvalidSelection, idx)
		}

		seen[idx] = true
	}

	return nil
}

// Hand returns a copy of the cards in hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Jokers returns the jokers in trigger order
func (p *Player) Jokers() []joker.Joker {
	return p.jokers.Jokers()
}

// HandsLeft returns how many hands can still be played this round
func (p *Player) HandsLeft() int {
	return p.handsLeft
}

// DiscardsLeft returns how many discards can still be made this round
func (p *Player) DiscardsLeft() int {
	return p.discardsLeft
}

// CardsLeft returns how many cards are left to draw this round
func (p *Player) CardsLeft() int {
	return p.pile.CardsLeft()
}
