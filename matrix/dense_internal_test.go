// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAlloc_Ceiling(t *testing.T) {
	// The ceiling must be representable as int on 32-bit targets.
	var ceiling int32 = MaxDenseElements
	assert.Equal(t, int32(math.MaxInt32), ceiling)

	n, err := checkAlloc(MaxDenseElements, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxDenseElements, n)

	n, err = checkAlloc(1, MaxDenseElements)
	require.NoError(t, err)
	assert.Equal(t, MaxDenseElements, n)

	_, err = checkAlloc(MaxDenseElements, 2)
	require.ErrorIs(t, err, ErrAllocation)
	_, err = checkAlloc(1<<16, 1<<16) // 2^32 cells
	require.ErrorIs(t, err, ErrAllocation)
	_, err = checkAlloc(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, ErrAllocation)
}
