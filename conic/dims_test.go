package conic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConeDimsSum(t *testing.T) {
	assert.Equal(t, 0, ConeDims{}.Sum())
	assert.Equal(t, 4, ConeDims{Linear: 4}.Sum())
	assert.Equal(t, 9, ConeDims{Linear: 2, SOC: []int{3, 4}}.Sum())
	assert.Equal(t, 12, ConeDims{Linear: 2, SOC: []int{4}, ExpCones: 2}.Sum())
}

func TestConeDimsCloneIsDeep(t *testing.T) {
	d := ConeDims{Linear: 3, SOC: []int{2, 5}, ExpCones: 1}

	c := d.Clone()
	require.Equal(t, d, c)

	c.SOC[0] = 99
	c.Linear = 0
	assert.Equal(t, 2, d.SOC[0], "clone must not alias the original SOC slice")
	assert.Equal(t, 3, d.Linear)
}

func TestConeDimsCloneNilSOC(t *testing.T) {
	c := ConeDims{Linear: 1}.Clone()
	assert.Nil(t, c.SOC)
}
