package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Hand represents the cards a player is holding
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Select returns the cards at the given indices, in the order given.
// Every index must be in range.
func (h Hand) Select(indices []int) []Card {
	cards := make([]Card, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(h) {
			panic(fmt.Sprintf("index %d out of range for hand of %d", idx, len(h)))
		}

		cards[i] = h[idx]
	}

	return cards
}

// RemoveIndices removes the cards at the given indices.
// Out-of-range and duplicate indices are ignored. Returns the number of cards removed.
func (h *Hand) RemoveIndices(indices []int) int {
	remove := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(*h) {
			remove[idx] = true
		}
	}

	newHand := make(Hand, 0, len(*h))
	for i, c := range *h {
		if !remove[i] {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return len(remove)
}

// SortByRank sorts the hand by rank, then by suit
func (h Hand) SortByRank() {
	sort.SliceStable(h, func(i, j int) bool {
		if h[i].Rank != h[j].Rank {
			return h[i].Rank < h[j].Rank
		}

		return strings.Compare(string(h[i].Suit), string(h[j].Suit)) < 0
	})
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
