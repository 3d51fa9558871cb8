package contract

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// DaosCount holds an integer counter for DAOs (used for generating IDs).
	DaosCount = "count:daos"
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:props"
	// ReceiptsCount holds an integer counter for vote receipts (used for generating IDs).
	ReceiptsCount = "count:receipts"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kDaoMeta stores serialized dao.Instance blobs.
	kDaoMeta byte = 0x01
	// kDaoConfig stores dao.Config fragments so config updates touch fewer bytes.
	kDaoConfig byte = 0x02
	// kDaoByAsset maps a governance asset ticker to its one DAO id.
	kDaoByAsset byte = 0x03
	// kDaoTreasury stores per-asset balances in the DAO treasury.
	kDaoTreasury byte = 0x07
	// kProposalMeta contains encoded dao.Proposal records.
	kProposalMeta byte = 0x10
	// kVoteReceipt houses encoded dao.VoteReceipt structs.
	kVoteReceipt byte = 0x20
)
