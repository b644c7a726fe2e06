package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "Rs.120.00", Format(12000))
	assert.Equal(t, "Rs.70.50", Format(7050))
	assert.Equal(t, "Rs.0.05", Format(5))
	assert.Equal(t, "Rs.-3.25", Format(-325))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "240.00", Plain(24000))
	assert.Equal(t, "0.00", Plain(0))
}
