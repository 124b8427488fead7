package lppl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGridTCCandidates(t *testing.T) {
	g := DefaultGrid()
	tcs := g.tcCandidates(300)

	assert.Len(t, tcs, 20)
	assert.Equal(t, 305.0, tcs[0])
	assert.Equal(t, 495.0, tcs[len(tcs)-1])
}

func TestDefaultGridComboCount(t *testing.T) {
	g := DefaultGrid()
	assert.Equal(t, len(g.M)*len(g.Omega)*len(g.Phi), g.comboCount())
	assert.Equal(t, 140, g.comboCount())
}

func TestBetterPrefersHigherR2(t *testing.T) {
	a := candidate{fit: Fit{R2: 0.8}, idx: 3}
	b := candidate{fit: Fit{R2: 0.9}, idx: 9}

	assert.Equal(t, b, better(a, b))
	assert.Equal(t, b, better(b, a))
}

func TestBetterTieBreaksOnGridOrder(t *testing.T) {
	a := candidate{fit: Fit{R2: 0.9}, idx: 9}
	b := candidate{fit: Fit{R2: 0.9}, idx: 3}

	assert.Equal(t, b, better(a, b))
	assert.Equal(t, b, better(b, a))
}

func TestBetterHandlesEmpty(t *testing.T) {
	none := noCandidate()
	c := candidate{fit: Fit{R2: 0.5}, idx: 0}

	assert.Equal(t, c, better(none, c))
	assert.Equal(t, c, better(c, none))
	assert.False(t, better(none, none).found())
}
