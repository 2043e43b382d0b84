package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLures(t *testing.T) {
	lures, err := parseLures([]string{"1=2", "2=4"})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 2: 4}, lures)
}

func TestParseLures_Empty(t *testing.T) {
	lures, err := parseLures(nil)
	require.NoError(t, err)
	assert.Nil(t, lures)
}

func TestParseLures_Aggregates(t *testing.T) {
	lures, err := parseLures([]string{"2=1", "2=3"})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 4}, lures)
}

func TestParseLures_Malformed(t *testing.T) {
	_, err := parseLures([]string{"2"})
	assert.Error(t, err)

	_, err = parseLures([]string{"x=1"})
	assert.Error(t, err)

	_, err = parseLures([]string{"2=y"})
	assert.Error(t, err)
}
