package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	return NewAccount(Config{
		BankName:      "BDO",
		AccountName:   "Maria Santos",
		AccountNumber: "001234567890",
		Currency:      "PHP",
		PaymentID:     "PMT001",
		Amount:        340,
	})
}

func TestAccount_DepositWithdraw(t *testing.T) {
	a := newTestAccount(t)

	got, err := a.Deposit(500)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got)

	got, err = a.Withdraw(120)
	require.NoError(t, err)
	assert.Equal(t, 380.0, got)
	assert.Equal(t, 380.0, a.Balance())
}

func TestAccount_Rejections(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(100)
	require.NoError(t, err)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"zero deposit", func() error { _, err := a.Deposit(0); return err }, ErrInvalidAmount},
		{"negative withdraw", func() error { _, err := a.Withdraw(-5); return err }, ErrInvalidAmount},
		{"overdraw", func() error { _, err := a.Withdraw(100.01); return err }, ErrInsufficientBalance},
		{"payment overdraw", func() error { _, err := a.ProcessPayment(200); return err }, ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.wantErr)
			assert.Equal(t, 100.0, a.Balance(), "failed operation must not move the balance")
		})
	}
}

func TestAccount_ProcessPayment(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(340)
	require.NoError(t, err)

	got, err := a.ProcessPayment(340)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestAccount_Details(t *testing.T) {
	a := newTestAccount(t)
	d := a.Details()
	assert.Equal(t, "BDO", d.BankName)
	assert.Equal(t, "Maria Santos", d.AccountName)
	assert.Equal(t, "PHP", d.Currency)
	assert.Equal(t, 0.0, d.Balance)
	assert.Equal(t, "Payment ID: PMT001, Amount: 340.00 PHP", a.PaymentDetails().String())
	assert.True(t, a.PaymentDetails().Valid())

	defaulted := NewAccount(Config{BankName: "BPI"})
	assert.Equal(t, "PHP", defaulted.Details().Currency)
	assert.NotEmpty(t, defaulted.PaymentDetails().PaymentID, "payment id is generated when omitted")
}
