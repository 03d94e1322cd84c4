package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 3))
	assert.Equal(t, 1, CalculateTotalPages(3, 3))
	assert.Equal(t, 2, CalculateTotalPages(4, 3))
	assert.Equal(t, 0, CalculateTotalPages(4, 0))
}

func TestClampPerPage(t *testing.T) {
	assert.Equal(t, 3, ClampPerPage(0, 3, 20))
	assert.Equal(t, 3, ClampPerPage(-5, 3, 20))
	assert.Equal(t, 7, ClampPerPage(7, 3, 20))
	assert.Equal(t, 20, ClampPerPage(500, 3, 20))
}
