package tz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countdown/pkg/tz"
)

func TestLoad(t *testing.T) {
	loc, err := tz.Load("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = tz.Load(tz.Local)
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = tz.Load("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = tz.Load("Not/AZone")
	assert.Error(t, err)
}
