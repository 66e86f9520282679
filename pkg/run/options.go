package run

import (
	"errors"

	"jokerpoker/internal/config"
)

// Options contains the various options for starting a new run
type Options struct {
	HandSize  int
	Hands     int
	Discards  int
	MaxJokers int
	// Jokers are the names of the jokers the player starts with, in order
	Jokers []string
	// Seed makes the shuffles and boss picks repeatable. Zero is random.
	Seed int64
	// Antes overrides the score target table when set
	Antes []uint64
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		HandSize:  8,
		Hands:     4,
		Discards:  3,
		MaxJokers: 5,
		Jokers:    []string{"Joker"},
	}
}

// OptionsFromConfig returns the options described by the configuration
func OptionsFromConfig(c config.Config) Options {
	return Options{
		HandSize:  c.Player.HandSize,
		Hands:     c.Player.Hands,
		Discards:  c.Player.Discards,
		MaxJokers: c.Player.MaxJokers,
		Jokers:    c.Player.Jokers,
		Seed:      c.Seed,
		Antes:     c.Antes,
	}
}

// Validate will verify the options are valid. Nil is returned on success
func (o *Options) Validate() error {
	if o.HandSize < 1 {
		return errors.New("hand size must be at least one")
	}

	if o.Hands < 1 {
		return errors.New("hands must be at least one")
	}

	if o.Discards < 0 {
		return errors.New("discards cannot be negative")
	}

	if o.MaxJokers < 0 {
		return errors.New("max jokers cannot be negative")
	}

	if o.Seed < 0 {
		return errors.New("seed cannot be negative")
	}

	if o.Antes != nil && len(o.Antes) < 2 {
		return errors.New("the ante table must have at least two antes")
	}

	return nil
}
