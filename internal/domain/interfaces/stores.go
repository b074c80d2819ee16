package interfaces

import domaintypes "keyseal/internal/domain/types"

// RecordStore persists keystore records. Records are immutable once saved.
type RecordStore interface {
	SaveRecord(record domaintypes.Record) error
	ReplaceRecord(record domaintypes.Record) error
	LoadRecord(name domaintypes.WalletName) (domaintypes.Record, error)
	ListRecords() ([]domaintypes.WalletName, error)
	DeleteRecord(name domaintypes.WalletName) error
}
