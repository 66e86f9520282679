package poker

import "fmt"

// Hand is the category a played hand resolves to, i.e., flush house
type Hand int

// Constants for hand, weakest first
const (
	HighCard Hand = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// Hands lists every hand, strongest first. This is the order Classify tests them in.
var Hands = []Hand{
	FlushFive,
	FlushHouse,
	FiveOfAKind,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
	HighCard,
}

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	case FlushHouse:
		return "Flush House"
	case FlushFive:
		return "Flush Five"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// Base returns the chips and multiplier a hand starts scoring with
func (h Hand) Base() (chips, mult uint64) {
	switch h {
	case HighCard:
		return 5, 1
	case Pair:
		return 10, 2
	case TwoPair:
		return 20, 2
	case ThreeOfAKind:
		return 30, 3
	case Straight:
		return 30, 4
	case Flush:
		return 35, 4
	case FullHouse:
		return 40, 4
	case FourOfAKind:
		return 60, 7
	case StraightFlush:
		return 100, 8
	case FiveOfAKind:
		return 120, 12
	case FlushHouse:
		return 140, 14
	case FlushFive:
		return 160, 16
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// hand -> the hands that count as containing it
var families = map[Hand][]Hand{
	Pair:         {Pair, TwoPair, ThreeOfAKind, FullHouse, FourOfAKind, FiveOfAKind, FlushHouse, FlushFive},
	ThreeOfAKind: {ThreeOfAKind, FullHouse, FourOfAKind, FiveOfAKind, FlushHouse, FlushFive},
	TwoPair:      {TwoPair, FullHouse, FlushHouse},
	Straight:     {Straight, StraightFlush},
	Flush:        {Flush, StraightFlush, FlushHouse, FlushFive},
}

// Contains returns true if the hand contains the other hand, e.g., a full house contains a pair.
// Every hand contains itself.
func (h Hand) Contains(other Hand) bool {
	if h == other {
		return true
	}

	for _, member := range families[other] {
		if member == h {
			return true
		}
	}

	return false
}
