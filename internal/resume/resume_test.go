package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Single(t *testing.T) {
	assert.True(t, (&Period{Start: "2020", End: "2020"}).Single())
	assert.False(t, (&Period{Start: "2020", End: "2022"}).Single())
	assert.False(t, (&Period{Start: "2020"}).Single())

	var nilPeriod *Period
	assert.False(t, nilPeriod.Single())
}

func TestPeriod_Open(t *testing.T) {
	assert.True(t, (&Period{Start: "2020"}).Open())
	assert.False(t, (&Period{Start: "2020", End: "2022"}).Open())
	assert.False(t, (&Period{}).Open(), "a period without a start is not open, just empty")

	var nilPeriod *Period
	assert.False(t, nilPeriod.Open())
}
