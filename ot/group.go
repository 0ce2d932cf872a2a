//
// group.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// PointSize is the length of the canonical point encoding.
const PointSize = 32

// Scalar is a secret exponent. It has no accessors so that secret
// material can't be printed or serialized by accident.
type Scalar struct {
	s ristretto.Scalar
}

func (s *Scalar) isZero() bool {
	var zero ristretto.Scalar
	zero.SetZero()
	return s.s.Equals(&zero)
}

// bitScalar lifts the bit to the scalar 0 or 1 without branching on
// its value.
func bitScalar(bit Bit) *Scalar {
	var buf [32]byte
	buf[0] = byte(bit & 1)

	result := new(Scalar)
	result.s.SetBytes(&buf)
	return result
}

// Point is an element of the ristretto255 group.
type Point struct {
	p ristretto.Point
}

// Bytes returns the canonical encoding of the point.
func (p *Point) Bytes() []byte {
	return p.p.Bytes()
}

// Equal tests if the points are equal.
func (p *Point) Equal(o *Point) bool {
	return p.p.Equals(&o.p)
}

func (p *Point) String() string {
	return fmt.Sprintf("%x", p.Bytes())
}

func (p *Point) set(o *Point) *Point {
	p.p = o.p
	return p
}

// decodePoint decodes the canonical encoding of a non-identity point.
func decodePoint(data []byte) (*Point, error) {
	if len(data) != PointSize {
		return nil, fmt.Errorf("%w: length %d, expected %d",
			ErrInvalidEncoding, len(data), PointSize)
	}
	var buf [PointSize]byte
	copy(buf[:], data)

	result := new(Point)
	if !result.p.SetBytes(&buf) {
		return nil, fmt.Errorf("%w: non-canonical encoding",
			ErrInvalidEncoding)
	}
	var identity ristretto.Point
	identity.SetZero()
	if result.p.Equals(&identity) {
		return nil, fmt.Errorf("%w: identity element", ErrInvalidEncoding)
	}
	return result, nil
}
