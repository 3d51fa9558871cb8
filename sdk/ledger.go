package sdk

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrInsufficientBalance is returned when a draw or lock exceeds the liquid balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientLocked is returned when an unlock exceeds what was locked.
	ErrInsufficientLocked = errors.New("insufficient locked balance")
)

// Ledger is the token custody collaborator. The engine only ever moves amounts
// between an account's liquid and locked buckets; minting, splitting and
// merging balances stay with the host.
type Ledger interface {
	Balance(owner Address, asset Asset) uint64
	Deposit(owner Address, asset Asset, amount uint64)
	Withdraw(owner Address, asset Asset, amount uint64) error
	// Lock moves amount out of the owner's liquid balance into custody.
	Lock(owner Address, asset Asset, amount uint64) error
	// Unlock returns a previously locked amount to the owner's liquid balance.
	Unlock(owner Address, asset Asset, amount uint64) error
	Locked(owner Address, asset Asset) uint64
}

type account struct {
	liquid uint64
	locked uint64
}

// MemoryLedger keeps balances in a map, mirroring what the chain ledger does
// for real deployments. Used by tests and the demo wiring. Safe for concurrent
// use.
type MemoryLedger struct {
	mu       sync.Mutex
	accounts map[Address]map[Asset]*account
}

// NewMemoryLedger builds an empty ledger.
// Example payload: sdk.NewMemoryLedger()
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{accounts: map[Address]map[Asset]*account{}}
}

func (l *MemoryLedger) acct(owner Address, asset Asset) *account {
	assets, ok := l.accounts[owner]
	if !ok {
		assets = map[Asset]*account{}
		l.accounts[owner] = assets
	}
	a, ok := assets[asset]
	if !ok {
		a = &account{}
		assets[asset] = a
	}
	return a
}

// Balance returns the liquid balance for owner/asset.
func (l *MemoryLedger) Balance(owner Address, asset Asset) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct(owner, asset).liquid
}

// Deposit credits the liquid balance.
func (l *MemoryLedger) Deposit(owner Address, asset Asset, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acct(owner, asset).liquid += amount
}

// Withdraw debits the liquid balance or fails without partial effect.
func (l *MemoryLedger) Withdraw(owner Address, asset Asset, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.acct(owner, asset)
	if a.liquid < amount {
		return errors.Wrapf(ErrInsufficientBalance, "withdraw %d from %s", amount, owner)
	}
	a.liquid -= amount
	return nil
}

// Lock moves amount from liquid into the locked bucket.
func (l *MemoryLedger) Lock(owner Address, asset Asset, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.acct(owner, asset)
	if a.liquid < amount {
		return errors.Wrapf(ErrInsufficientBalance, "lock %d for %s", amount, owner)
	}
	a.liquid -= amount
	a.locked += amount
	return nil
}

// Unlock moves amount from locked back into liquid.
func (l *MemoryLedger) Unlock(owner Address, asset Asset, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.acct(owner, asset)
	if a.locked < amount {
		return errors.Wrapf(ErrInsufficientLocked, "unlock %d for %s", amount, owner)
	}
	a.locked -= amount
	a.liquid += amount
	return nil
}

// Locked returns the amount currently held in custody for owner/asset.
func (l *MemoryLedger) Locked(owner Address, asset Asset) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct(owner, asset).locked
}
