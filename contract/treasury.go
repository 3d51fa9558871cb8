package contract

import (
	"github.com/pkg/errors"

	"agora_dao/dao"
	"agora_dao/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// DAO Treasury
////////////////////////////////////////////////////////////////////////////////

// TreasuryBalance reads the DAO's balance for one asset. Missing key means zero.
func (e *Engine) TreasuryBalance(daoID uint64, asset sdk.Asset) dao.Amount {
	return dao.Amount(e.getCount(treasuryKey(daoID, asset)))
}

func (e *Engine) setTreasuryBalance(daoID uint64, asset sdk.Asset, n dao.Amount) {
	e.setCount(treasuryKey(daoID, asset), uint64(n))
}

// DepositTreasury moves funds from the depositor's ledger account into the
// DAO treasury. Anyone may top up any DAO.
func (e *Engine) DepositTreasury(from sdk.Address, daoID uint64, asset sdk.Asset, amount dao.Amount) error {
	if _, err := e.loadInstance(daoID); err != nil {
		return err
	}
	if err := e.ledger.Withdraw(from, asset, uint64(amount)); err != nil {
		return errors.Wrapf(err, "deposit to dao %d", daoID)
	}
	e.setTreasuryBalance(daoID, asset, e.TreasuryBalance(daoID, asset)+amount)

	e.emit(TreasuryDepositEvent{
		DaoID:  daoID,
		From:   from.String(),
		Asset:  asset.String(),
		Amount: uint64(amount),
	})
	return nil
}

// removeTreasuryFunds debits the treasury for a payout. The balance check and
// the write happen under the caller's proposal lock.
func (e *Engine) removeTreasuryFunds(daoID uint64, asset sdk.Asset, amount dao.Amount) error {
	bal := e.TreasuryBalance(daoID, asset)
	if bal < amount {
		return errors.Wrapf(ErrInsufficientTreasury, "have %d want %d %s", bal, amount, asset)
	}
	e.setTreasuryBalance(daoID, asset, bal-amount)
	return nil
}
