package common

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorCollector(t *testing.T) {
	var c ErrorCollector
	assert.False(t, c.HasErrors())
	assert.NoError(t, c.Combine())

	c.New(errors.New("bind failed"))
	c.Addf("candidate %d skipped", 3)

	assert.True(t, c.HasErrors())
	assert.Equal(t, "bind failed; candidate 3 skipped", c.String())
	assert.EqualError(t, c.Combine(), "bind failed; candidate 3 skipped")
}
