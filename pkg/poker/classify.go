package poker

import (
	"fmt"

	"jokerpoker/pkg/deck"
)

// MaxCards is the most cards that can be played in a single hand
const MaxCards = 5

// rankGroups keeps the indices of each rank, in the order the ranks first appear
type rankGroups struct {
	order   []int
	indices map[int][]int
}

func groupByRank(cards []deck.Card) rankGroups {
	g := rankGroups{
		order:   make([]int, 0, len(cards)),
		indices: make(map[int][]int, len(cards)),
	}

	for i, card := range cards {
		if _, ok := g.indices[card.Rank]; !ok {
			g.order = append(g.order, card.Rank)
		}

		g.indices[card.Rank] = append(g.indices[card.Rank], i)
	}

	return g
}

// withCount returns the indices of the first rank that appears exactly n times
func (g rankGroups) withCount(n int) ([]int, bool) {
	for _, rank := range g.order {
		if len(g.indices[rank]) == n {
			return g.indices[rank], true
		}
	}

	return nil, false
}

// numWithCount returns how many ranks appear exactly n times
func (g rankGroups) numWithCount(n int) int {
	count := 0
	for _, rank := range g.order {
		if len(g.indices[rank]) == n {
			count++
		}
	}

	return count
}

// isFullHouse returns true if the rank counts are exactly three and two
func (g rankGroups) isFullHouse() bool {
	return len(g.order) == 2 && g.numWithCount(3) == 1 && g.numWithCount(2) == 1
}

// isFlush returns true if exactly five cards share a suit
func isFlush(cards []deck.Card) bool {
	if len(cards) != MaxCards {
		return false
	}

	for _, card := range cards {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// isFive returns true if exactly five cards all match the first card under the given test
func isFive(cards []deck.Card, match func(a, b deck.Card) bool) bool {
	if len(cards) != MaxCards {
		return false
	}

	for _, card := range cards {
		if !match(card, cards[0]) {
			return false
		}
	}

	return true
}

func sameCard(a, b deck.Card) bool {
	return a == b
}

func sameRank(a, b deck.Card) bool {
	return a.Rank == b.Rank
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	return indices
}

// Classify determines the hand formed by the played cards and which of them score.
// The returned indices point into cards and are in ascending order.
// Between one and five cards must be played.
func Classify(cards []deck.Card) (Hand, []int) {
	n := len(cards)
	if n < 1 || n > MaxCards {
		panic(fmt.Sprintf("cannot classify %d cards, must be between 1 and %d", n, MaxCards))
	}

	flush := isFlush(cards)
	straight := isStraight(cards)
	groups := groupByRank(cards)

	// the order of these checks is the precedence of the hands
	switch {
	case isFive(cards, sameCard):
		return FlushFive, allIndices(n)
	case flush && groups.isFullHouse():
		return FlushHouse, allIndices(n)
	case isFive(cards, sameRank):
		return FiveOfAKind, allIndices(n)
	case flush && straight:
		return StraightFlush, allIndices(n)
	}

	if quads, ok := groups.withCount(4); ok {
		return FourOfAKind, copyInts(quads)
	}

	switch {
	case groups.isFullHouse():
		return FullHouse, allIndices(n)
	case flush:
		return Flush, allIndices(n)
	case straight:
		return Straight, allIndices(n)
	}

	if trips, ok := groups.withCount(3); ok {
		return ThreeOfAKind, copyInts(trips)
	}

	if groups.numWithCount(2) == 2 {
		indices := make([]int, 0, 4)
		for i, card := range cards {
			if len(groups.indices[card.Rank]) == 2 {
				indices = append(indices, i)
			}
		}

		return TwoPair, indices
	}

	if pair, ok := groups.withCount(2); ok {
		return Pair, copyInts(pair)
	}

	return HighCard, []int{highCardIndex(cards)}
}

// highCardIndex returns the index of the highest ranked card. The first one wins a tie.
func highCardIndex(cards []deck.Card) int {
	best := 0
	for i, card := range cards {
		if card.Rank > cards[best].Rank {
			best = i
		}
	}

	return best
}

// ClassifySubset classifies only the cards at the given indices.
// The returned indices point into the subset, not into cards.
func ClassifySubset(cards []deck.Card, indices []int) (Hand, []int) {
	subset := make([]deck.Card, len(indices))
	for i, idx := range indices {
		subset[i] = cards[idx]
	}

	return Classify(subset)
}

func copyInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)

	return out
}
