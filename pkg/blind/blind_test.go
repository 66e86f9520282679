package blind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokerpoker/internal/rng"
	"jokerpoker/pkg/deck"
)

// always returns the same index
type fixed int

func (f fixed) Intn(n int) int {
	return int(f) % n
}

func TestKind(t *testing.T) {
	a := assert.New(t)
	a.Equal("Small Blind", Small.String())
	a.Equal("Big Blind", Big.String())
	a.Equal("Boss Blind", Boss.String())
	a.PanicsWithValue("unknown blind: 3", func() {
		_ = Kind(3).String()
	})

	next, newAnte := Small.Next()
	a.Equal(Big, next)
	a.False(newAnte)

	next, newAnte = Big.Next()
	a.Equal(Boss, next)
	a.False(newAnte)

	next, newAnte = Boss.Next()
	a.Equal(Small, next)
	a.True(newAnte)
}

func TestFactory_New(t *testing.T) {
	a := assert.New(t)
	f := NewFactory(fixed(0))

	b, err := f.New(Small, 1)
	require.NoError(t, err)
	a.Equal("Small Blind", b.Name)
	a.Equal(uint64(300), b.Score)
	a.Nil(b.Boss)
	a.Empty(b.Description)
	a.False(b.IsDebuffed(deck.MustCardFromString("2c")))

	b, err = f.New(Big, 1)
	require.NoError(t, err)
	a.Equal("Big Blind", b.Name)
	a.Equal(uint64(450), b.Score)
	a.Nil(b.Boss)

	b, err = f.New(Boss, 1)
	require.NoError(t, err)
	a.Equal("Boss Blind - The Club", b.Name)
	a.Equal(uint64(600), b.Score)
	a.Equal("All Club cards are debuffed", b.Description)
	a.True(b.IsDebuffed(deck.MustCardFromString("2c")))
	a.False(b.IsDebuffed(deck.MustCardFromString("2s")))
	a.Equal("Boss Blind - The Club - Ante 1 (target 600)", b.String())
}

func TestFactory_New_bigRoundsDown(t *testing.T) {
	f := NewFactory(fixed(0))
	f.Antes = []uint64{101}

	b, err := f.New(Big, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(151), b.Score)
}

func TestFactory_New_largestAnte(t *testing.T) {
	f := NewFactory(fixed(0))

	b, err := f.New(Big, f.NumAntes()-1)
	require.NoError(t, err)
	assert.Equal(t, uint64(43_500_000_000_000), b.Score)
}

func TestFactory_New_pickedBoss(t *testing.T) {
	names := BossNames()
	for i, name := range names {
		b, err := NewFactory(fixed(i)).New(Boss, 2)
		require.NoError(t, err)
		assert.Equal(t, name, b.Boss.Name())
		assert.Equal(t, uint64(1600), b.Score)
	}
}

func TestFactory_New_seededIsDeterministic(t *testing.T) {
	b1, err := NewFactory(rng.NewSeeded(7)).New(Boss, 1)
	require.NoError(t, err)
	b2, err := NewFactory(rng.NewSeeded(7)).New(Boss, 1)
	require.NoError(t, err)

	assert.Equal(t, b1.Name, b2.Name)
}

func TestFactory_New_anteOutOfRange(t *testing.T) {
	f := NewFactory(fixed(0))

	_, err := f.New(Small, len(Antes))
	assert.ErrorIs(t, err, ErrAnteOutOfRange)
	assert.EqualError(t, err, "ante out of range: 15")

	_, err = f.New(Small, -1)
	assert.ErrorIs(t, err, ErrAnteOutOfRange)
}

func TestNew(t *testing.T) {
	b, err := New(Boss, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(4000), b.Score)
	assert.Contains(t, BossNames(), b.Boss.Name())
}

func TestAntes_ascend(t *testing.T) {
	for i := 1; i < len(Antes); i++ {
		assert.True(t, Antes[i] > Antes[i-1])
	}
}
