package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReal(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)

	clk := NewReal(loc)

	assert.Equal(t, loc, clk.Location())
	assert.Equal(t, loc, clk.Now().Location())
}

func TestFixed(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)

	start := time.Date(2025, 12, 8, 18, 30, 0, 0, loc)
	clk := NewFixed(start)

	assert.True(t, clk.Now().Equal(start))
	assert.Equal(t, loc, clk.Location())

	clk.Advance(time.Minute)
	assert.True(t, clk.Now().Equal(start.Add(time.Minute)))

	later := start.Add(time.Hour)
	clk.Set(later)
	assert.True(t, clk.Now().Equal(later))
}
