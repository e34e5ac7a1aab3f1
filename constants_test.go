package splinther

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGravity(t *testing.T) {
	assert.Equal(t, GravityEarth, GetGravity("earth"))
	assert.Equal(t, GravityMoon, GetGravity("Moon"))
	assert.Equal(t, GravityMoon, GetGravity("lunar"))
	assert.Equal(t, GravityMars, GetGravity("MARS"))
	assert.Equal(t, GravitySpace, GetGravity("space"))
	assert.Equal(t, GravitySpace, GetGravity("Microgravity"))

	// Unknown environments default to Earth
	assert.Equal(t, GravityEarth, GetGravity("unknown"))
	assert.Equal(t, GravityEarth, GetGravity(""))
}
