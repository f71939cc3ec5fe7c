package model

import "errors"

// ErrInputMalformed marks a class-1 error (§7): the input XML failed to
// parse, or an element required tags it did not carry. Fatal; cmd/* exits
// non-zero via errors.Is against this sentinel.
var ErrInputMalformed = errors.New("input malformed")

// ErrConfigInvalid marks a class-2 error (§7): missing/duplicate CLI
// arguments, or an input/output path collision. Fatal before any parsing.
var ErrConfigInvalid = errors.New("config invalid")
