package service

import (
	"testing"

	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRateFallsBackWhenUnset(t *testing.T) {
	env := newTestEnv(t)

	rate, err := env.settings.GetRate(t.Context(), env.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 55.0, rate)
}

func TestSetRateRoundtrip(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.settings.SetRate(t.Context(), env.seller.ID, 62.5)
	require.NoError(t, err)

	rate, err := env.settings.GetRate(t.Context(), env.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 62.5, rate)

	// overwriting replaces the previous value
	_, err = env.settings.SetRate(t.Context(), env.seller.ID, 70)
	require.NoError(t, err)

	rate, err = env.settings.GetRate(t.Context(), env.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, rate)
}

func TestSetRateRejectsNonPositive(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.settings.SetRate(t.Context(), env.seller.ID, 0)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = env.settings.SetRate(t.Context(), env.seller.ID, -5)
	require.Error(t, err)
}
