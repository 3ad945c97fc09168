package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoteState_Apply(t *testing.T) {
	cases := []struct {
		from  VoteState
		dir   VoteDirection
		next  VoteState
		delta int
	}{
		{VoteInit, DirectionUp, VoteUp, 1},
		{VoteInit, DirectionDown, VoteDown, -1},
		{VoteUp, DirectionUp, VoteInit, -1},
		{VoteDown, DirectionDown, VoteInit, 1},
		{VoteUp, DirectionDown, VoteDown, -2},
		{VoteDown, DirectionUp, VoteUp, 2},
	}
	for _, tc := range cases {
		next, delta := tc.from.Apply(tc.dir)
		assert.Equal(t, tc.next, next, "%s then %d", tc.from, tc.dir)
		assert.Equal(t, tc.delta, delta, "%s then %d", tc.from, tc.dir)
	}
}

// Summing deltas over any sequence must land on the final state's value.
func TestVoteState_DeltasTrackState(t *testing.T) {
	seq := []VoteDirection{DirectionUp, DirectionUp, DirectionDown, DirectionUp, DirectionDown, DirectionDown, DirectionUp}
	state, total := VoteInit, 0
	for _, d := range seq {
		var delta int
		state, delta = state.Apply(d)
		total += delta
		assert.Equal(t, int(state), total)
	}
}

func TestVoteState_String(t *testing.T) {
	assert.Equal(t, "UP", VoteUp.String())
	assert.Equal(t, "DOWN", VoteDown.String())
	assert.Equal(t, "INIT", VoteInit.String())
	assert.Equal(t, "VoteState(7)", VoteState(7).String())
}
