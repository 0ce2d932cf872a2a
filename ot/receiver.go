//
// receiver.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/subtle"
	"fmt"
)

// Receiver implements the OT receiver.
type Receiver struct {
	suite *Suite
}

// NewReceiver creates a new OT receiver.
func NewReceiver(suite *Suite) *Receiver {
	return &Receiver{
		suite: suite,
	}
}

// Suite returns the receiver's suite.
func (r *Receiver) Suite() *Suite {
	return r.suite
}

// Transfer holds the receiver's state for one transfer. It is created
// by Query and consumed by Elect. A Transfer must be used for exactly
// one Elect call and it must not be shared between transfers; reuse
// is not detected.
type Transfer struct {
	// x <- Zl
	x   *Scalar
	bit Bit
}

// Bit returns the transfer's selection bit.
func (t *Transfer) Bit() Bit {
	return t.bit
}

// Query creates a new transfer for the selection bit. It returns the
// query to send to the sender and the transfer state for decrypting
// the sender's reply.
func (r *Receiver) Query(senderPublic []byte, bit Bit) (
	[]byte, *Transfer, error) {

	if !bit.valid() {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidBit, bit)
	}
	S, err := r.suite.Decode(senderPublic)
	if err != nil {
		return nil, nil, fmt.Errorf("ot: sender public key: %w", err)
	}

	// x <- Zl
	x, err := r.suite.randomScalar()
	if err != nil {
		return nil, nil, err
	}

	// R = bS + xG, computed for both bit values.
	R := r.suite.pointAdd(r.suite.scalarMul(bitScalar(bit), S),
		r.suite.scalarBaseMul(x))

	return r.suite.encode(R), &Transfer{
		x:   x,
		bit: bit,
	}, nil
}

// Elect decrypts the message selected by the transfer's selection bit
// from the sender's reply. The senderPublic must be the public key
// that was used for the transfer's Query.
func (r *Receiver) Elect(senderPublic []byte, xfer *Transfer, reply *Reply) (
	[]byte, error) {

	S, err := r.suite.Decode(senderPublic)
	if err != nil {
		return nil, fmt.Errorf("ot: sender public key: %w", err)
	}

	// T = xS
	k := r.suite.deriveKey(r.suite.scalarMul(xfer.x, S))

	return r.suite.mask(k, selectCipher(xfer.bit, reply.C0, reply.C1)), nil
}

// selectCipher returns c0 if bit is 0 and c1 otherwise. The copying
// does not branch on bit; only the ciphertext lengths, which are
// public, affect the memory access pattern.
func selectCipher(bit Bit, c0, c1 []byte) []byte {
	b := int(bit & 1)

	l := len(c0)
	if len(c1) > l {
		l = len(c1)
	}
	buf := make([]byte, l)
	subtle.ConstantTimeCopy(1-b, buf[:len(c0)], c0)
	subtle.ConstantTimeCopy(b, buf[:len(c1)], c1)

	n := subtle.ConstantTimeSelect(b, len(c1), len(c0))
	return buf[:n]
}
