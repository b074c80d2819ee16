package types

// WalletName is the display label of a stored record, also used as its file stem.
type WalletName string

// String returns the string form of the name.
func (n WalletName) String() string { return string(n) }
