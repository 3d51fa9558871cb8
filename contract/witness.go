package contract

import (
	"github.com/google/uuid"

	"agora_dao/sdk"
)

// Witness is a single-use ticket authorizing creation of the one DAO for a
// governance asset. CreateDAO marks it spent; presenting it again, or any
// other witness for the same asset, fails.
type Witness struct {
	ID    uuid.UUID
	Asset sdk.Asset
}

// NewWitness mints a fresh ticket for the asset.
func NewWitness(asset sdk.Asset) *Witness {
	return &Witness{ID: uuid.New(), Asset: asset}
}

// witnessKey marks a witness id as spent in storage.
func witnessKey(id uuid.UUID) string {
	return "wtn:" + id.String()
}
