package main

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"agora_dao/contract"
	"agora_dao/dao"
	"agora_dao/sdk"
)

// Walks one full governance round against in-memory host services: create a
// DAO, fund it, pass a payout proposal and execute it. The event log printed
// along the way is the pipe format indexers consume.
func main() {
	state := sdk.NewMemoryState()
	ledger := sdk.NewMemoryLedger()
	clk := clock.NewMock()

	eng := contract.New(state, ledger, clk, contract.LogSink{Logf: func(s string) {
		fmt.Println(s)
	}})

	alice := sdk.Address("hive:alice")
	bob := sdk.Address("hive:bob")
	ledger.Deposit(alice, sdk.AssetHive, 1_000)
	ledger.Deposit(bob, sdk.AssetHive, 1_000)

	daoID, err := eng.CreateDAO(alice, contract.NewWitness(sdk.AssetHive), dao.Config{
		VotingDelay:    1_000,
		VotingPeriod:   5_000,
		QuorumRate:     dao.Percent(50),
		MinActionDelay: 2_000,
		MinQuorumVotes: 100,
	})
	if err != nil {
		panic(err)
	}
	if err := eng.DepositTreasury(alice, daoID, sdk.AssetHive, 500); err != nil {
		panic(err)
	}

	propID, err := eng.Propose(daoID, alice, dao.PayoutAction{
		Receiver: bob,
		Amount:   250,
		Asset:    sdk.AssetHive,
	}, 2_000, 100)
	if err != nil {
		panic(err)
	}

	// Into the voting window.
	clk.Add(1_500 * time.Millisecond)
	if _, err := eng.CastVote(propID, alice, 150, dao.SideFor); err != nil {
		panic(err)
	}
	if _, err := eng.CastVote(propID, bob, 40, dao.SideAgainst); err != nil {
		panic(err)
	}

	// Past the end, queue and wait out the action delay.
	clk.Add(5_500 * time.Millisecond)
	if err := eng.Queue(propID); err != nil {
		panic(err)
	}
	clk.Add(2_000 * time.Millisecond)
	if err := eng.Execute(propID); err != nil {
		panic(err)
	}

	st, _ := eng.ProposalState(propID)
	fmt.Printf("proposal %d finished as %s, bob now holds %d HIVE\n",
		propID, st, ledger.Balance(bob, sdk.AssetHive))
}
