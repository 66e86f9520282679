package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"jokerpoker/internal/config"
	"jokerpoker/internal/rng"
	"jokerpoker/pkg/blind"
	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/joker"
	"jokerpoker/pkg/poker"
	"jokerpoker/pkg/scoring"
)

var (
	cardsFlag  = flag.String("cards", "", "the played cards, e.g. 14s,14h,2c")
	jokersFlag = flag.String("jokers", "", "comma-separated joker names in trigger order (defaults to the configured jokers)")
	blindFlag  = flag.String("blind", "", "the blind being played (small, big, boss), empty for none")
	bossFlag   = flag.String("boss", "", "the boss ability of a boss blind, random if empty")
	anteFlag   = flag.Int("ante", 1, "the ante being played")
)

// score classifies and scores the cards given on the command line, and prints each step
func score(cfg config.Config) error {
	cards, err := deck.CardsFromString(*cardsFlag)
	if err != nil {
		return err
	}

	if len(cards) < 1 || len(cards) > poker.MaxCards {
		return fmt.Errorf("play between 1 and %d cards", poker.MaxCards)
	}

	jokers, err := parseJokers(cfg)
	if err != nil {
		return err
	}

	b, err := parseBlind(cfg)
	if err != nil {
		return err
	}

	hand, scoringCards := poker.Classify(cards)
	total, events := scoring.New(logrus.StandardLogger()).Trace(cards, hand, scoringCards, b, jokers.Jokers())

	if b != nil {
		pterm.Info.Printfln("%s", b)
		if b.Description != "" {
			pterm.Info.Printfln("%s", b.Description)
		}
	}

	if jokers.Len() > 0 {
		pterm.Info.Printfln("Jokers: %s", jokers)
	}

	data := pterm.TableData{{"Step", "Event", "Chips", "Mult"}}
	for i, e := range events {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Describe(),
			strconv.FormatUint(e.Score.Chips, 10),
			strconv.FormatUint(e.Score.Mult, 10),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	pterm.Success.Printfln("%s (%s): %s = %d", hand, deck.CardsToString(cards), total, total.Chips*total.Mult)
	return nil
}

func parseJokers(cfg config.Config) (*joker.Set, error) {
	names := cfg.Player.Jokers
	if *jokersFlag != "" {
		names = strings.Split(*jokersFlag, ",")
	}

	set := joker.NewSet(cfg.Player.MaxJokers)
	for _, name := range names {
		if err := set.Add(joker.Resolve(strings.TrimSpace(name))); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func parseBlind(cfg config.Config) (*blind.Blind, error) {
	var kind blind.Kind
	switch strings.ToLower(*blindFlag) {
	case "":
		return nil, nil
	case "small":
		kind = blind.Small
	case "big":
		kind = blind.Big
	case "boss":
		kind = blind.Boss
	default:
		return nil, errors.New("blind must be small, big or boss")
	}

	var g rng.Generator = rng.Crypto{}
	if cfg.Seed > 0 {
		g = rng.NewSeeded(cfg.Seed)
	}

	f := blind.NewFactory(g)
	if cfg.Antes != nil {
		f.Antes = cfg.Antes
	}

	if *bossFlag != "" {
		f.Bosses = []string{*bossFlag}
	}

	return f.New(kind, *anteFlag)
}
