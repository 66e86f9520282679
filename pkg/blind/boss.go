package blind

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"jokerpoker/pkg/deck"
)

// DefaultBoss is the boss ability an unknown name resolves to
const DefaultBoss = "The Club"

// ErrUnknownBoss is returned by LookupBoss when no boss ability has the name
var ErrUnknownBoss = errors.New("unknown boss ability")

// BossAbility is the debuff a boss blind applies to the cards played against it
type BossAbility interface {
	// Name returns the name of the boss
	Name() string

	// Description returns what the debuff does
	Description() string

	// IsDebuffed returns true if the card scores nothing
	IsDebuffed(card deck.Card) bool
}

// SuitDebuff debuffs every card of a suit
type SuitDebuff struct {
	name string
	suit deck.Suit
}

// Name returns the name
func (s *SuitDebuff) Name() string {
	return s.name
}

// Description returns the description
func (s *SuitDebuff) Description() string {
	return fmt.Sprintf("All %s cards are debuffed", suitLabel(s.suit))
}

// IsDebuffed returns true if the card is of the debuffed suit
func (s *SuitDebuff) IsDebuffed(card deck.Card) bool {
	return card.Suit == s.suit
}

var bosses = map[string]deck.Suit{
	"The Club":   deck.Clubs,
	"The Goad":   deck.Spades,
	"The Window": deck.Diamonds,
	"The Head":   deck.Hearts,
}

// LookupBoss returns the boss ability by the given name
func LookupBoss(name string) (BossAbility, error) {
	suit, ok := bosses[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBoss, name)
	}

	return &SuitDebuff{name: name, suit: suit}, nil
}

// ResolveBoss returns the boss ability by the given name.
// An unknown name never fails, it resolves to DefaultBoss.
func ResolveBoss(name string) BossAbility {
	boss, err := LookupBoss(name)
	if err != nil {
		logrus.WithField("boss", name).Warn("unknown boss ability, using the default")
		boss, _ = LookupBoss(DefaultBoss)
	}

	return boss
}

// BossNames returns the name of every boss ability, sorted
func BossNames() []string {
	names := make([]string, 0, len(bosses))
	for name := range bosses {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
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
