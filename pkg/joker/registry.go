package joker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/poker"
)

// DefaultName is the joker an unknown name resolves to
const DefaultName = "Joker"

// ErrUnknownJoker is returned by Lookup when no joker has the name
var ErrUnknownJoker = errors.New("unknown joker")

var factories = map[string]func() Joker{
	DefaultName:        func() Joker { return &Jimbo{} },
	"Greedy Joker":     suitMult("Greedy Joker", deck.Diamonds),
	"Lusty Joker":      suitMult("Lusty Joker", deck.Hearts),
	"Wrathful Joker":   suitMult("Wrathful Joker", deck.Spades),
	"Gluttonous Joker": suitMult("Gluttonous Joker", deck.Clubs),
	"Jolly Joker":      handMult("Jolly Joker", poker.Pair, 8),
	"Zany Joker":       handMult("Zany Joker", poker.ThreeOfAKind, 12),
	"Mad Joker":        handMult("Mad Joker", poker.TwoPair, 10),
	"Crazy Joker":      handMult("Crazy Joker", poker.Straight, 12),
	"Droll Joker":      handMult("Droll Joker", poker.Flush, 10),
	"Sly Joker":        handChips("Sly Joker", poker.Pair, 50),
	"Wily Joker":       handChips("Wily Joker", poker.ThreeOfAKind, 100),
	"Clever Joker":     handChips("Clever Joker", poker.TwoPair, 80),
	"Devious Joker":    handChips("Devious Joker", poker.Straight, 100),
	"Crafty Joker":     handChips("Crafty Joker", poker.Flush, 80),
}

func suitMult(name string, suit deck.Suit) func() Joker {
	return func() Joker {
		return &SuitMult{name: name, suit: suit, amount: 3}
	}
}

func handMult(name string, hand poker.Hand, amount uint64) func() Joker {
	return func() Joker {
		return &HandMult{name: name, hand: hand, amount: amount}
	}
}

func handChips(name string, hand poker.Hand, amount uint64) func() Joker {
	return func() Joker {
		return &HandChips{name: name, hand: hand, amount: amount}
	}
}

// Lookup returns a new joker by the given name
func Lookup(name string) (Joker, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJoker, name)
	}

	return factory(), nil
}

// Resolve returns a new joker by the given name.
// An unknown name never fails, it resolves to the default Joker.
func Resolve(name string) Joker {
	j, err := Lookup(name)
	if err != nil {
		logrus.WithField("joker", name).Warn("unknown joker, using the default")
		return factories[DefaultName]()
	}

	return j
}

// Names returns the name of every known joker, sorted
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
