// Package store provides file-based persistence for keystore records.
//
// KeystoreFileStore implements domain.RecordStore by keeping one JSON file per
// wallet, named <name>.json, under a single directory. Files are written with
// mode 0600 through a temp file that is synced and then linked or renamed into
// place, so a reader never observes a partially written record.
//
// # Notes
//
//   - Records are immutable. SaveRecord refuses to overwrite; a password change
//     goes through ReplaceRecord.
//   - Names double as file stems and are restricted to letters, digits, '.',
//     '_' and '-'.
//   - Every file read back is parsed with keystore.Parse, so version and shape
//     errors surface at load time.
package store
