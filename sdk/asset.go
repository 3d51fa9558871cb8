package sdk

// Asset identifies a governance token type by ticker. One DAO is ever minted
// per asset, so the ticker doubles as the DAO family tag.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetHive.String()
func (a Asset) String() string {
	return string(a)
}
