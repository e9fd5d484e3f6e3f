// Package repositories stores the live payment instruments created
// through the API. Everything is in memory: instruments exist from
// creation until process exit, keyed by generated ids.
package repositories

import (
	"sync"

	"github.com/google/uuid"

	"kaha/internal/services/bank"
	"kaha/internal/services/card"
	"kaha/internal/services/cash"
	"kaha/internal/services/ewallet"
)

// Store is the registry of all live instruments.
type Store struct {
	mu       sync.RWMutex
	cards    map[string]*card.Card
	accounts map[string]*bank.Account
	wallets  map[string]*ewallet.Wallet
	payments map[string]*cash.Payment
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{
		cards:    make(map[string]*card.Card),
		accounts: make(map[string]*bank.Account),
		wallets:  make(map[string]*ewallet.Wallet),
		payments: make(map[string]*cash.Payment),
	}
}

// PutCard registers a card and returns its id.
func (s *Store) PutCard(c *card.Card) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.cards[id] = c
	return id
}

// GetCard looks up a card by id.
func (s *Store) GetCard(id string) (*card.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cards[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return c, nil
}

// PutAccount registers a bank account and returns its id.
func (s *Store) PutAccount(a *bank.Account) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.accounts[id] = a
	return id
}

// GetAccount looks up a bank account by id.
func (s *Store) GetAccount(id string) (*bank.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// PutWallet registers an e-wallet and returns its id.
func (s *Store) PutWallet(w *ewallet.Wallet) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.wallets[id] = w
	return id
}

// GetWallet looks up an e-wallet by id.
func (s *Store) GetWallet(id string) (*ewallet.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wallets[id]
	if !ok {
		return nil, ErrWalletNotFound
	}
	return w, nil
}

// PutPayment registers a cash payment under its receipt number.
func (s *Store) PutPayment(p *cash.Payment) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := p.ReceiptNumber()
	s.payments[id] = p
	return id
}

// GetPayment looks up a cash payment by receipt number.
func (s *Store) GetPayment(id string) (*cash.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}
