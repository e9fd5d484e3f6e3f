package ewallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_CashIn(t *testing.T) {
	w := NewWallet("Juan", 5000)

	got, err := w.CashIn(250)
	require.NoError(t, err)
	assert.Equal(t, 5250.0, got)

	_, err = w.CashIn(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 5250.0, w.Balance())
}

func TestWallet_CashOutAndSend(t *testing.T) {
	w := NewWallet("Juan", 1000)

	got, err := w.CashOut(400)
	require.NoError(t, err)
	assert.Equal(t, 600.0, got)

	got, err = w.Send(600)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = w.Send(0.01)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	_, err = w.CashOut(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewWallet_ClampsNegativeOpening(t *testing.T) {
	w := NewWallet("Juan", -50)
	assert.Equal(t, 0.0, w.Balance())
	assert.Equal(t, "Juan", w.Owner())
}
