// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the cmdprod CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/cmdprod/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Command parameters live in tagged structs bound to flags through
// [BindFlags], so a command's inputs read as one declaration instead
// of a list of flag registrations. Most commands set [Command.Params]
// to a closure returning the struct pointer and let Execute bind it;
// [FlagsFromParams] covers the rare command that builds its flag set
// by hand. [NewCommandLogger] builds the slog logger commands report
// progress with, and [ExitError] carries a non-zero exit code out of
// a Run function without an extra error message.
package cli
