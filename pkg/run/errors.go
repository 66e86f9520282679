package run

import "errors"

// ErrInvalidSelection is returned when the selected cards or jokers can't be used
var ErrInvalidSelection = errors.New("invalid selection")

// ErrNoDiscards is returned when discarding with no discards left
var ErrNoDiscards = errors.New("no discards remaining")

// ErrNoHands is returned when playing with no hands left
var ErrNoHands = errors.New("no hands remaining")

// ErrRoundOver is returned when acting on a round that has been won
var ErrRoundOver = errors.New("the round is over")

// ErrRoundInProgress is returned when advancing before the round has been won
var ErrRoundInProgress = errors.New("the round is still in progress")

// ErrGameOver is returned when acting after the run has ended
var ErrGameOver = errors.New("the run is over")
