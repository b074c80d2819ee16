// Package prompt obtains passwords from the outside world.
//
// A Source may block indefinitely (an interactive terminal) or answer
// immediately (an environment variable, a file, a fixed value). When the user
// gives up, a Source returns ErrAborted, which callers must keep distinct from
// a wrong password: the unlock was never attempted.
package prompt
