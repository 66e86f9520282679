package main

import (
	"github.com/pterm/pterm"

	"jokerpoker/pkg/blind"
	"jokerpoker/pkg/joker"
)

func listJokers() {
	data := pterm.TableData{{"Joker", "Effect"}}
	for _, name := range joker.Names() {
		j := joker.Resolve(name)
		data = append(data, []string{j.Name(), j.Description()})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func listBosses() {
	data := pterm.TableData{{"Boss", "Ability"}}
	for _, name := range blind.BossNames() {
		boss := blind.ResolveBoss(name)
		data = append(data, []string{boss.Name(), boss.Description()})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
