package scoring

import (
	"fmt"

	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/joker"
)

// EventKind is what happened at a step of scoring
type EventKind int

// Constants for event kind
const (
	// Base is the starting chips and mult of the hand
	Base EventKind = iota
	// CardScored is a card adding its face value
	CardScored
	// CardDebuffed is a scoring card the blind zeroed out
	CardDebuffed
	// JokerTriggered is a joker changing the score
	JokerTriggered
)

func (e EventKind) String() string {
	switch e {
	case Base:
		return "base"
	case CardScored:
		return "card"
	case CardDebuffed:
		return "debuffed"
	case JokerTriggered:
		return "joker"
	default:
		panic(fmt.Sprintf("unknown event: %d", e))
	}
}

// Event is a single step of scoring a hand
type Event struct {
	Kind EventKind `json:"kind"`
	// Index is the position of the card in the played cards, or -1
	Index int         `json:"index"`
	Card  *deck.Card  `json:"card,omitempty"`
	Joker string      `json:"joker,omitempty"`
	Score joker.Score `json:"score"`
}

// Describe returns a one-line summary of the event
func (e Event) Describe() string {
	switch e.Kind {
	case CardScored:
		return fmt.Sprintf("%s scores %d", e.Card, e.Card.FaceValue())
	case CardDebuffed:
		return fmt.Sprintf("%s is debuffed", e.Card)
	case JokerTriggered:
		if e.Card != nil {
			return fmt.Sprintf("%s on %s", e.Joker, e.Card)
		}

		return e.Joker
	default:
		return e.Kind.String()
	}
}
