package poker

import (
	"sort"

	"jokerpoker/pkg/deck"
)

// wheel is the ace-low straight, A-2-3-4-5
var wheel = []int{2, 3, 4, 5, deck.Ace}

// isStraight returns true if exactly five cards form a run of consecutive ranks.
// The ace plays high, or low in the wheel.
func isStraight(cards []deck.Card) bool {
	if len(cards) != MaxCards {
		return false
	}

	ranks := make([]int, len(cards))
	for i, card := range cards {
		ranks[i] = card.Rank
	}
	sort.Ints(ranks)

	if equalInts(ranks, wheel) {
		return true
	}

	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] != 1 {
			return false
		}
	}

	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
