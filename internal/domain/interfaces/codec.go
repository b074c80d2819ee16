package interfaces

import domaintypes "keyseal/internal/domain/types"

// RecordCodec converts between a password plus sk_ key and a Record.
type RecordCodec interface {
	Dump(name, password, secretKey string) (domaintypes.Record, error)
	Recover(password string, record domaintypes.Record) (string, error)
	ChangePassword(oldPassword, newPassword string, record domaintypes.Record) (domaintypes.Record, error)
}

// Recoverer is the read side of RecordCodec.
type Recoverer interface {
	Recover(password string, record domaintypes.Record) (string, error)
}
