// Package commands defines the keyseal CLI and wires dependencies for subcommands.
//
// Commands
//
//   - create           Generate a key, or import one, into a new keystore
//   - import-mnemonic  Restore a keystore from a 24-word seed backup
//   - address          Print the public address (no password needed)
//   - export           Print the secret key or its mnemonic
//   - sign             Sign a message with the keystore's key
//   - passwd           Re-encrypt a keystore under a new password
//   - inspect          Print the stored record
//   - list             List keystores with their addresses
//   - remove           Delete a keystore
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the dependency graph (logger, metrics, codec, store, wallet service) before
// any subcommand runs. Passwords come from --password-env, --password-file or
// an echo-free terminal prompt; only the terminal prompt is retried after a
// wrong password.
package commands
