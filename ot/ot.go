//
// ot.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

// Package ot implements the 1-out-of-2 oblivious transfer protocol of
// Chou and Orlandi (The Simplest Protocol for Oblivious Transfer,
// https://eprint.iacr.org/2015/267.pdf) over the ristretto255 group.
//
// The Sender creates its key pair once and publishes its public key
// out-of-band. For each transfer, the Receiver builds a blinded query
// from the Sender's public key and its selection bit, the Sender
// encrypts both payloads with keys derived from the query, and the
// Receiver decrypts the payload it selected. The Sender learns
// nothing about the selection bit and the Receiver learns nothing
// about the other payload.
//
//	Sender                               Receiver
//	y <- Zl, S = yG
//	                  ----- S ----->
//	                                     x <- Zl, R = bS + xG
//	                  <---- R ------
//	k0 = H(yR), k1 = H(yR - yS)
//	c0 = m0 ^ E(k0), c1 = m1 ^ E(k1)
//	                  --- c0, c1 -->
//	                                     mb = cb ^ E(H(xS))
package ot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is returned when a byte string does not
	// decode to a valid, canonical, non-identity group element.
	ErrInvalidEncoding = errors.New("ot: invalid point encoding")

	// ErrInvalidBit is returned for selection bits other than 0 and 1.
	ErrInvalidBit = errors.New("ot: selection bit must be 0 or 1")

	// ErrInvalidReply is returned when a marshalled reply is malformed.
	ErrInvalidReply = errors.New("ot: invalid reply")

	// ErrSuiteMismatch is returned when the peers use different
	// group and primitive suites.
	ErrSuiteMismatch = errors.New("ot: suite mismatch")
)

// Bit is the Receiver's selection bit.
type Bit uint

func (b Bit) String() string {
	return fmt.Sprintf("%d", uint(b))
}

func (b Bit) valid() bool {
	return b <= 1
}
