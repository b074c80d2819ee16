// Package wallet orchestrates keystore records on behalf of the CLI.
//
// A Service ties a domain.RecordStore to a domain.RecordCodec: it creates
// records from fresh, imported or mnemonic-recovered keys, hands out
// account.Account values for signing and export, and re-encrypts records under
// a new password. Password acquisition stays with the caller; the service only
// receives plain strings or a prompt.Source.
//
// # Notes
//
//   - Create checks the name and that it is free before paying for key
//     derivation.
//   - ChangePassword writes a brand new record (fresh salt, nonce and id) and
//     swaps it in with ReplaceRecord.
package wallet
