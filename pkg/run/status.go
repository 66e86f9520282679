package run

import "fmt"

// Status is the state of the current round
type Status int

// Constants for status
const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		panic(fmt.Sprintf("unknown status: %d", s))
	}
}
