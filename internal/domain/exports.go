package domain

import (
	interfaces "keyseal/internal/domain/interfaces"
	types "keyseal/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	WalletName   = types.WalletName
	SecretKey    = types.SecretKey
	PublicKey    = types.PublicKey
	Record       = types.Record
	RecordCrypto = types.RecordCrypto
	KDFParams    = types.KDFParams
	CipherParams = types.CipherParams
	HexBytes     = types.HexBytes
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RecordStore = interfaces.RecordStore
	RecordCodec = interfaces.RecordCodec
	Recoverer   = interfaces.Recoverer
)
