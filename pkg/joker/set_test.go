package joker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSet(names ...string) *Set {
	s := NewSet(0)
	for _, name := range names {
		if err := s.Add(Resolve(name)); err != nil {
			panic(err)
		}
	}

	return s
}

func TestSet_Add(t *testing.T) {
	a := assert.New(t)

	s := NewSet(2)
	a.NoError(s.Add(Resolve("Joker")))
	a.NoError(s.Add(Resolve("Sly Joker")))

	err := s.Add(Resolve("Mad Joker"))
	a.ErrorIs(err, ErrTooManyJokers)
	a.EqualError(err, "no room for another joker: holding 2 of 2")
	a.Equal(2, s.Len())
	a.Equal(2, s.Max())
	a.Equal("Joker, Sly Joker", s.String())

	unlimited := NewSet(0)
	for i := 0; i < 10; i++ {
		a.NoError(unlimited.Add(Resolve("Joker")))
	}
	a.Equal(10, unlimited.Len())
}

func TestSet_Move(t *testing.T) {
	a := assert.New(t)

	s := newTestSet("Joker", "Sly Joker", "Mad Joker", "Zany Joker")

	s.Move(0, 2)
	a.Equal("Sly Joker, Mad Joker, Joker, Zany Joker", s.String())

	s.Move(3, 0)
	a.Equal("Zany Joker, Sly Joker, Mad Joker, Joker", s.String())

	s.Move(1, 1)
	a.Equal("Zany Joker, Sly Joker, Mad Joker, Joker", s.String())

	s.Move(2, 3)
	a.Equal("Zany Joker, Sly Joker, Joker, Mad Joker", s.String())

	a.PanicsWithValue("joker position 4 out of range for 4 jokers", func() {
		s.Move(0, 4)
	})

	a.PanicsWithValue("joker position -1 out of range for 4 jokers", func() {
		s.Move(-1, 0)
	})
}

func TestSet_Remove(t *testing.T) {
	a := assert.New(t)

	s := newTestSet("Joker", "Sly Joker", "Mad Joker")
	j := s.Remove(1)
	a.Equal("Sly Joker", j.Name())
	a.Equal("Joker, Mad Joker", s.String())

	a.Panics(func() {
		s.Remove(2)
	})
}

func TestSet_Jokers(t *testing.T) {
	s := newTestSet("Joker", "Sly Joker")
	jokers := s.Jokers()
	jokers[0] = Resolve("Mad Joker")

	assert.Equal(t, "Joker, Sly Joker", s.String())
}
