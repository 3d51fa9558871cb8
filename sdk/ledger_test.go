package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agora_dao/sdk"
)

// TestLedgerLockUnlock checks the liquid and locked buckets move in lockstep.
func TestLedgerLockUnlock(t *testing.T) {
	l := sdk.NewMemoryLedger()
	a := sdk.Address("hive:someone")

	l.Deposit(a, sdk.AssetHive, 100)
	assert.NoError(t, l.Lock(a, sdk.AssetHive, 60))
	assert.Equal(t, uint64(40), l.Balance(a, sdk.AssetHive))
	assert.Equal(t, uint64(60), l.Locked(a, sdk.AssetHive))

	assert.ErrorIs(t, l.Lock(a, sdk.AssetHive, 50), sdk.ErrInsufficientBalance)
	assert.ErrorIs(t, l.Unlock(a, sdk.AssetHive, 70), sdk.ErrInsufficientLocked)

	assert.NoError(t, l.Unlock(a, sdk.AssetHive, 60))
	assert.Equal(t, uint64(100), l.Balance(a, sdk.AssetHive))
	assert.Equal(t, uint64(0), l.Locked(a, sdk.AssetHive))
}

// TestLedgerWithdraw checks spending only touches the liquid bucket.
func TestLedgerWithdraw(t *testing.T) {
	l := sdk.NewMemoryLedger()
	a := sdk.Address("hive:someone")

	l.Deposit(a, sdk.AssetHive, 100)
	assert.NoError(t, l.Lock(a, sdk.AssetHive, 80))
	assert.ErrorIs(t, l.Withdraw(a, sdk.AssetHive, 30), sdk.ErrInsufficientBalance)
	assert.NoError(t, l.Withdraw(a, sdk.AssetHive, 20))
	assert.Equal(t, uint64(80), l.Locked(a, sdk.AssetHive), "locked stake is not spendable")
}

// TestLedgerAssetsIsolated checks balances never bleed across assets.
func TestLedgerAssetsIsolated(t *testing.T) {
	l := sdk.NewMemoryLedger()
	a := sdk.Address("hive:someone")

	l.Deposit(a, sdk.AssetHive, 100)
	assert.Equal(t, uint64(0), l.Balance(a, sdk.AssetHbd))
	assert.ErrorIs(t, l.Withdraw(a, sdk.AssetHbd, 1), sdk.ErrInsufficientBalance)
}
