package contract

import "agora_dao/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// daoKey builds a storage key string for a DAO instance by ID.
func daoKey(id uint64) string {
	var buf [9]byte
	buf[0] = kDaoMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// daoConfigKey uses prefix 0x02 so configs sit next to meta but not collide.
func daoConfigKey(id uint64) string {
	var buf [9]byte
	buf[0] = kDaoConfig
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// daoByAssetKey pins the one-DAO-per-asset invariant into storage.
func daoByAssetKey(asset sdk.Asset) string {
	assetStr := asset.String()
	buf := make([]byte, 0, 1+len(assetStr))
	buf = append(buf, kDaoByAsset)
	buf = append(buf, assetStr...)
	return string(buf)
}

// treasuryKey stores a single asset balance in the DAO's multi-asset treasury.
// Key format: kDaoTreasury|daoID|asset
func treasuryKey(daoID uint64, asset sdk.Asset) string {
	assetStr := asset.String()
	buf := make([]byte, 0, 1+8+len(assetStr))
	buf = append(buf, kDaoTreasury)
	buf = packU64LE(daoID, buf)
	buf = append(buf, assetStr...)
	return string(buf)
}

// proposalKey encodes id under the 0x10 prefix keeping proposal lumps contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposalMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// receiptKey stores vote receipts sequentially under the 0x20 prefix.
func receiptKey(id uint64) string {
	var buf [9]byte
	buf[0] = kVoteReceipt
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
