package ui2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAlpha(t *testing.T) {
	c := ColorHighlight.WithAlpha(0.5)
	assert.Equal(t, ColorHighlight.R, c.R)
	assert.Equal(t, ColorHighlight.B, c.B)
	assert.Equal(t, float32(0.5), c.A)
	assert.Equal(t, float32(1), ColorHighlight.A)
}
