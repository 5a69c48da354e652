package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_KnownValues(t *testing.T) {
	// Pinned constants: downstream variant selection depends on these exact
	// values. If this test fails, the digest changed and every lead's
	// selected templates changed with it.
	assert.Equal(t, uint32(0xd41d8cd9), Identity(""))
	assert.Equal(t, uint32(0x357a20e8), Identity("a@b.com"))
	assert.Equal(t, uint32(1316434450), Identity("max@bau-muster.de"))
}

func TestIdentity_Deterministic(t *testing.T) {
	inputs := []string{"", "a", "a@b.com", "Muster Elektrotechnik GmbH", "ümlaut@straße.de"}
	for _, in := range inputs {
		assert.Equal(t, Identity(in), Identity(in), "input %q", in)
	}
}

func TestPick_InRange(t *testing.T) {
	for _, seed := range []string{"", "x", "a@b.com", "long-seed-with-salt-cta"} {
		for n := 1; n <= 7; n++ {
			idx := Pick(seed, n)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n)
		}
	}
}

func TestPick_SingleElementPool(t *testing.T) {
	assert.Equal(t, 0, Pick("anything", 1))
}

func TestBit(t *testing.T) {
	// Identity("max@bau-muster.de") = 1316434450: bit 0 clear, bit 1 set.
	assert.False(t, Bit("max@bau-muster.de", 0))
	assert.True(t, Bit("max@bau-muster.de", 1))
	// Identity("") = 0xd41d8cd9: odd.
	assert.True(t, Bit("", 0))
}
