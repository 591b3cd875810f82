// Package scaffold renders the embedded post template and writes the target
// file. It powers the "postkit new" command. The parent posts directory is
// never created here: a missing directory is a fatal filesystem error by
// contract, not something to silently repair.
package scaffold
