package run

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"jokerpoker/internal/rng"
	"jokerpoker/pkg/blind"
	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/joker"
	"jokerpoker/pkg/poker"
	"jokerpoker/pkg/scoring"
)

// the most cards that can be played or discarded at once
const maxSelection = poker.MaxCards

// runs begin at ante 1, ante 0 is never played
const firstAnte = 1

// PlayResult is the outcome of playing a hand
type PlayResult struct {
	Cards   []deck.Card     `json:"cards"`
	Hand    poker.Hand      `json:"hand"`
	Scoring []int           `json:"scoring"`
	Chips   uint64          `json:"chips"`
	Mult    uint64          `json:"mult"`
	Events  []scoring.Event `json:"events"`
	// Total is chips × mult, what the hand added to the round score
	Total      uint64 `json:"total"`
	RoundScore uint64 `json:"roundScore"`
	Status     Status `json:"status"`
}

// Game is a single run: a sequence of blinds across increasing antes
type Game struct {
	ID string

	player *Player
	blinds *blind.Factory
	engine *scoring.Engine
	rng    rng.Generator
	logger logrus.FieldLogger

	ante       int
	blind      *blind.Blind
	roundScore uint64
	status     Status

	// complete is true once every ante has been beaten
	complete bool
}

// NewGame starts a new run at the small blind of the first ante
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	player, err := newPlayer(opts)
	if err != nil {
		return nil, err
	}

	var g rng.Generator = rng.Crypto{}
	if opts.Seed > 0 {
		g = rng.NewSeeded(opts.Seed)
	}

	blinds := blind.NewFactory(g)
	if opts.Antes != nil {
		blinds.Antes = opts.Antes
	}

	id := uuid.New().String()
	logger = logger.WithField("run", id)

	game := &Game{
		ID:     id,
		player: player,
		blinds: blinds,
		engine: scoring.New(logger),
		rng:    g,
		logger: logger,
	}

	if err := game.startRound(firstAnte, blind.Small); err != nil {
		return nil, err
	}

	return game, nil
}

func (g *Game) startRound(ante int, kind blind.Kind) error {
	b, err := g.blinds.New(kind, ante)
	if err != nil {
		return err
	}

	g.ante = ante
	g.blind = b
	g.roundScore = 0
	g.status = InProgress
	g.player.startRound(g.nextSeed())

	g.logger.WithFields(logrus.Fields{
		"ante":   ante,
		"blind":  b.Name,
		"target": b.Score,
	}).Info("round started")

	return nil
}

// nextSeed returns a positive shuffle seed
func (g *Game) nextSeed() int64 {
	return int64(g.rng.Intn(math.MaxInt32)) + 1
}

func (g *Game) checkInProgress() error {
	if g.complete {
		return ErrGameOver
	}

	switch g.status {
	case Won:
		return ErrRoundOver
	case Lost:
		return ErrGameOver
	}

	return nil
}

// Play plays the selected cards from the hand, scores them, and refills the hand
func (g *Game) Play(indices []int) (*PlayResult, error) {
	if err := g.checkInProgress(); err != nil {
		return nil, err
	}

	if g.player.handsLeft <= 0 {
		return nil, ErrNoHands
	}

	if err := g.player.validateSelection(indices); err != nil {
		return nil, err
	}

	g.player.handsLeft--
	cards := g.player.take(indices)

	hand, scoringCards := poker.Classify(cards)
	score, events := g.engine.Trace(cards, hand, scoringCards, g.blind, g.player.Jokers())

	total := score.Chips * score.Mult
	g.roundScore += total

	if g.roundScore >= g.blind.Score {
		g.status = Won
	} else if g.player.handsLeft == 0 {
		g.status = Lost
	}

	g.logger.WithFields(logrus.Fields{
		"cards":      deck.CardsToString(cards),
		"hand":       hand.String(),
		"chips":      score.Chips,
		"mult":       score.Mult,
		"total":      total,
		"roundScore": g.roundScore,
		"status":     g.status.String(),
	}).Info("hand played")

	return &PlayResult{
		Cards:      cards,
		Hand:       hand,
		Scoring:    scoringCards,
		Chips:      score.Chips,
		Mult:       score.Mult,
		Events:     events,
		Total:      total,
		RoundScore: g.roundScore,
		Status:     g.status,
	}, nil
}

// Discard throws away the selected cards and draws replacements
func (g *Game) Discard(indices []int) error {
	if err := g.checkInProgress(); err != nil {
		return err
	}

	if g.player.discardsLeft <= 0 {
		return ErrNoDiscards
	}

	if err := g.player.validateSelection(indices); err != nil {
		return err
	}

	g.player.discardsLeft--
	cards := g.player.take(indices)

	g.logger.WithField("cards", deck.CardsToString(cards)).Debug("discarded")
	return nil
}

// NextRound advances to the next blind once the current one has been beaten.
// Beating the boss blind moves on to the next ante. Beating the last ante completes the run.
func (g *Game) NextRound() error {
	if g.status == Lost || g.complete {
		return ErrGameOver
	}

	if g.status != Won {
		return ErrRoundInProgress
	}

	kind, newAnte := g.blind.Kind.Next()
	ante := g.ante
	if newAnte {
		ante++
	}

	if ante >= g.blinds.NumAntes() {
		g.complete = true
		g.logger.WithField("ante", g.ante).Info("run complete")
		return nil
	}

	return g.startRound(ante, kind)
}

// AddJoker adds a joker by name to the end of the player's jokers
func (g *Game) AddJoker(name string) error {
	return g.player.jokers.Add(joker.Resolve(name))
}

// RemoveJoker removes the joker at position i
func (g *Game) RemoveJoker(i int) (joker.Joker, error) {
	if i < 0 || i >= g.player.jokers.Len() {
		return nil, fmt.Errorf("%w: no joker at %d", ErrInvalidSelection, i)
	}

	return g.player.jokers.Remove(i), nil
}

// MoveJoker moves the joker at position from to position to, changing the order they trigger in
func (g *Game) MoveJoker(from, to int) error {
	n := g.player.jokers.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: cannot move joker %d to %d", ErrInvalidSelection, from, to)
	}

	g.player.jokers.Move(from, to)
	return nil
}

// Player returns the player
func (g *Game) Player() *Player {
	return g.player
}

// Ante returns the current ante
func (g *Game) Ante() int {
	return g.ante
}

// Blind returns the blind of the current round
func (g *Game) Blind() *blind.Blind {
	return g.blind
}

// RoundScore returns the score accumulated this round
func (g *Game) RoundScore() uint64 {
	return g.roundScore
}

// Status returns the status of the current round
func (g *Game) Status() Status {
	return g.status
}

// Complete returns true once every ante has been beaten
func (g *Game) Complete() bool {
	return g.complete
}
