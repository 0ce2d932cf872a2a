//
// sender.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"fmt"
)

// Sender implements the OT sender. The sender's key pair is created
// once and it can serve any number of independent transfers. Sender
// is safe for concurrent use.
type Sender struct {
	suite *Suite
	// y <- Zl
	y *Scalar
	// S = yG
	pub *Point
	// Sy = yS
	blinded *Point
}

// NewSender creates a new OT sender with a fresh key pair.
func NewSender(suite *Suite) (*Sender, error) {
	y, err := suite.randomScalar()
	if err != nil {
		return nil, err
	}
	S := suite.scalarBaseMul(y)

	return &Sender{
		suite:   suite,
		y:       y,
		pub:     S,
		blinded: suite.scalarMul(y, S),
	}, nil
}

// Suite returns the sender's suite.
func (s *Sender) Suite() *Suite {
	return s.suite
}

// Public returns the encoding of the sender's public key for
// out-of-band publication.
func (s *Sender) Public() []byte {
	return s.suite.encode(s.pub)
}

// PublicPoint returns the sender's public key.
func (s *Sender) PublicPoint() *Point {
	return new(Point).set(s.pub)
}

// Reply encrypts the messages m0 and m1 for the receiver's query. Only
// the message matching the receiver's selection bit can be decrypted
// by the receiver. The ciphertext lengths match the message lengths.
// The function does not modify m0 or m1.
func (s *Sender) Reply(query, m0, m1 []byte) (*Reply, error) {
	R, err := s.suite.Decode(query)
	if err != nil {
		return nil, fmt.Errorf("ot: query: %w", err)
	}

	// T0 = yR
	T0 := s.suite.scalarMul(s.y, R)
	// T1 = yR - yS
	T1 := s.suite.pointSub(T0, s.blinded)

	k0 := s.suite.deriveKey(T0)
	k1 := s.suite.deriveKey(T1)

	return &Reply{
		C0: s.suite.mask(k0, m0),
		C1: s.suite.mask(k1, m1),
	}, nil
}
