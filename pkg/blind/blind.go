package blind

import (
	"errors"
	"fmt"

	"jokerpoker/internal/rng"
	"jokerpoker/pkg/deck"
)

// ErrAnteOutOfRange is returned when there is no score target for an ante
var ErrAnteOutOfRange = errors.New("ante out of range")

// Antes is the base score target of each ante. Runs start at ante 1.
var Antes = []uint64{
	100, 300, 800, 2_000, 5_000, 11_000, 20_000, 35_000, 50_000,
	110_000, 560_000, 7_200_000, 300_000_000, 47_000_000_000, 29_000_000_000_000,
}

// Kind is which of the three blinds of an ante is being played
type Kind int

// Constants for kind, in the order they are played
const (
	Small Kind = iota
	Big
	Boss
)

func (k Kind) String() string {
	switch k {
	case Small:
		return "Small Blind"
	case Big:
		return "Big Blind"
	case Boss:
		return "Boss Blind"
	default:
		panic(fmt.Sprintf("unknown blind: %d", k))
	}
}

// Next returns the blind that follows this one, and true if it starts a new ante
func (k Kind) Next() (Kind, bool) {
	switch k {
	case Small:
		return Big, false
	case Big:
		return Boss, false
	default:
		return Small, true
	}
}

// Blind is the challenge of a single round.
// A blind does not change once it is created.
type Blind struct {
	Name        string
	Kind        Kind
	Ante        int
	Score       uint64
	Description string
	Boss        BossAbility
}

// IsDebuffed returns true if the blind's boss ability debuffs the card
func (b *Blind) IsDebuffed(card deck.Card) bool {
	return b.Boss != nil && b.Boss.IsDebuffed(card)
}

func (b *Blind) String() string {
	return fmt.Sprintf("%s - Ante %d (target %d)", b.Name, b.Ante, b.Score)
}

// Factory creates blinds
type Factory struct {
	// Antes is the score table, indexed by ante
	Antes []uint64
	// Bosses are the names of the boss abilities a boss blind picks from
	Bosses []string
	// RNG picks the boss ability
	RNG rng.Generator
}

// NewFactory returns a factory with the standard ante table and every boss ability
func NewFactory(g rng.Generator) *Factory {
	if g == nil {
		g = rng.Crypto{}
	}

	return &Factory{
		Antes:  Antes,
		Bosses: BossNames(),
		RNG:    g,
	}
}

// NumAntes returns the number of antes in the score table
func (f *Factory) NumAntes() int {
	return len(f.Antes)
}

// New returns the blind of the given kind for the ante
func (f *Factory) New(kind Kind, ante int) (*Blind, error) {
	if ante < 0 || ante >= len(f.Antes) {
		return nil, fmt.Errorf("%w: %d", ErrAnteOutOfRange, ante)
	}

	base := f.Antes[ante]
	b := &Blind{
		Name: kind.String(),
		Kind: kind,
		Ante: ante,
	}

	switch kind {
	case Small:
		b.Score = base
	case Big:
		b.Score = base * 3 / 2
	case Boss:
		boss := ResolveBoss(rng.Pick(f.RNG, f.Bosses))
		b.Name = fmt.Sprintf("%s - %s", kind, boss.Name())
		b.Score = base * 2
		b.Description = boss.Description()
		b.Boss = boss
	default:
		panic(fmt.Sprintf("unknown blind: %d", kind))
	}

	return b, nil
}

// New returns the blind of the given kind for the ante, picking any boss ability at random
func New(kind Kind, ante int) (*Blind, error) {
	return NewFactory(nil).New(kind, ante)
}
