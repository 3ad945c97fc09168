package models

import "fmt"

// VoteState is a user's current vote on one promotion. The numeric value is
// the contribution to Promotion.Votes.
type VoteState int

const (
	VoteDown VoteState = -1
	VoteInit VoteState = 0
	VoteUp   VoteState = 1
)

func (s VoteState) String() string {
	switch s {
	case VoteUp:
		return "UP"
	case VoteDown:
		return "DOWN"
	case VoteInit:
		return "INIT"
	default:
		return fmt.Sprintf("VoteState(%d)", int(s))
	}
}

// VoteDirection is the button a user pressed.
type VoteDirection int

const (
	DirectionUp VoteDirection = iota + 1
	DirectionDown
)

func (d VoteDirection) state() VoteState {
	if d == DirectionUp {
		return VoteUp
	}
	return VoteDown
}

// Apply returns the state after voting d from s and the change to the
// promotion's vote counter. Voting the current direction again clears the
// vote; voting the other direction flips it.
func (s VoteState) Apply(d VoteDirection) (VoteState, int) {
	target := d.state()
	next := target
	if s == target {
		next = VoteInit
	}
	return next, int(next) - int(s)
}

type VoteRecord struct {
	UserID      string    `json:"userId"`
	PromotionID string    `json:"promotionId"`
	VoteState   VoteState `json:"voteState"`
}
