package joker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooManyJokers is returned when adding a joker to a full set
var ErrTooManyJokers = errors.New("no room for another joker")

// Set is the ordered collection of jokers a player holds.
// The order is the order the jokers trigger in.
type Set struct {
	jokers []Joker
	max    int
}

// NewSet returns an empty set that holds up to max jokers. A max of zero is unlimited.
func NewSet(max int) *Set {
	return &Set{
		jokers: make([]Joker, 0, max),
		max:    max,
	}
}

// Add appends a joker to the end of the set
func (s *Set) Add(j Joker) error {
	if s.max > 0 && len(s.jokers) >= s.max {
		return fmt.Errorf("%w: holding %d of %d", ErrTooManyJokers, len(s.jokers), s.max)
	}

	s.jokers = append(s.jokers, j)
	return nil
}

// Remove removes and returns the joker at position i
func (s *Set) Remove(i int) Joker {
	s.checkIndex(i)

	j := s.jokers[i]
	s.jokers = append(s.jokers[:i], s.jokers[i+1:]...)
	return j
}

// Move takes the joker at position from and reinserts it at position to.
// The jokers in between shift over by one.
func (s *Set) Move(from, to int) {
	s.checkIndex(from)
	s.checkIndex(to)

	if from == to {
		return
	}

	j := s.jokers[from]
	if from < to {
		copy(s.jokers[from:to], s.jokers[from+1:to+1])
	} else {
		copy(s.jokers[to+1:from+1], s.jokers[to:from])
	}

	s.jokers[to] = j
}

// Jokers returns the jokers in trigger order
func (s *Set) Jokers() []Joker {
	jokers := make([]Joker, len(s.jokers))
	copy(jokers, s.jokers)

	return jokers
}

// Len returns the number of jokers held
func (s *Set) Len() int {
	return len(s.jokers)
}

// Max returns the most jokers the set can hold, zero is unlimited
func (s *Set) Max() int {
	return s.max
}

func (s *Set) String() string {
	names := make([]string, len(s.jokers))
	for i, j := range s.jokers {
		names[i] = j.Name()
	}

	return strings.Join(names, ", ")
}

func (s *Set) checkIndex(i int) {
	if i < 0 || i >= len(s.jokers) {
		panic(fmt.Sprintf("joker position %d out of range for %d jokers", i, len(s.jokers)))
	}
}
