package scoring

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"jokerpoker/pkg/blind"
	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/joker"
	"jokerpoker/pkg/poker"
)

// Engine scores played hands
type Engine struct {
	logger logrus.FieldLogger
}

// New returns a new scoring engine
func New(logger logrus.FieldLogger) *Engine {
	return &Engine{logger: logger}
}

// Score returns the chips and multiplier of the played cards.
// The round score is chips × mult, which is left to the caller.
// The blind may be nil when no debuff applies. Nothing passed in is modified.
func (e *Engine) Score(cards []deck.Card, hand poker.Hand, scoring []int, b *blind.Blind, jokers []joker.Joker) (chips, mult uint64) {
	score, _ := e.Trace(cards, hand, scoring, b, jokers)
	return score.Chips, score.Mult
}

// Trace scores the played cards the same way Score does, and returns every step taken
func (e *Engine) Trace(cards []deck.Card, hand poker.Hand, scoring []int, b *blind.Blind, jokers []joker.Joker) (joker.Score, []Event) {
	indices := make([]int, len(scoring))
	copy(indices, scoring)
	sort.Ints(indices)

	for _, idx := range indices {
		if idx < 0 || idx >= len(cards) {
			panic(fmt.Sprintf("scoring index %d out of range for %d cards", idx, len(cards)))
		}
	}

	t := &tracer{logger: e.logger.WithField("hand", hand.String())}

	// 1. base
	chips, mult := hand.Base()
	score := &joker.Score{Chips: chips, Mult: mult}
	t.record(Event{Kind: Base, Index: -1, Score: *score})

	played := joker.NewPlayed(cards, hand, indices)

	// 2. on play
	for _, j := range jokers {
		t.trigger(j, nil, -1, score, func() bool {
			return joker.TriggerPlay(j, played, score)
		})
	}

	// 3. each scoring card, then each joker on that card
	for _, idx := range indices {
		card := cards[idx]
		if b != nil && b.IsDebuffed(card) {
			t.record(Event{Kind: CardDebuffed, Index: idx, Card: &card, Score: *score})
			continue
		}

		score.Chips += card.FaceValue()
		t.record(Event{Kind: CardScored, Index: idx, Card: &card, Score: *score})

		for _, j := range jokers {
			t.trigger(j, &card, idx, score, func() bool {
				return joker.TriggerScore(j, card, score)
			})
		}
	}

	// 4. end of round
	for _, j := range jokers {
		t.trigger(j, nil, -1, score, func() bool {
			return joker.TriggerEndOfRound(j, played, score)
		})
	}

	return *score, t.events
}

type tracer struct {
	logger logrus.FieldLogger
	events []Event
}

func (t *tracer) record(ev Event) {
	t.events = append(t.events, ev)

	fields := logrus.Fields{
		"event": ev.Kind.String(),
		"chips": ev.Score.Chips,
		"mult":  ev.Score.Mult,
	}

	if ev.Card != nil {
		fields["card"] = ev.Card.String()
	}

	if ev.Joker != "" {
		fields["joker"] = ev.Joker
	}

	t.logger.WithFields(fields).Debug(ev.Describe())
}

// trigger runs a joker hook and records an event if the score changed
func (t *tracer) trigger(j joker.Joker, card *deck.Card, idx int, score *joker.Score, hook func() bool) {
	before := *score
	if !hook() || before == *score {
		return
	}

	t.record(Event{
		Kind:  JokerTriggered,
		Index: idx,
		Card:  card,
		Joker: j.Name(),
		Score: *score,
	})
}
