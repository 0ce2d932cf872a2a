//
// suite.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/dchest/blake2b"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"

	"github.com/markkurossi/otc/env"
)

// KeySize is the size of the branch keys derived from group points.
const KeySize = 32

// Suite binds the ristretto255 group with its generator, the key
// hash, the keystream expander, and the source of randomness. Suite
// is immutable after construction and safe for concurrent use.
type Suite struct {
	name   string
	g      Point
	rand   io.Reader
	hash   func(data []byte) []byte
	expand func(key []byte, n int) []byte
}

// NewSuite creates a new suite from the configuration. A nil config
// selects the defaults.
func NewSuite(config *env.Config) (*Suite, error) {
	suite := &Suite{
		rand: config.GetRandom(),
	}
	suite.g.p.SetBase()

	h := config.GetHash()
	switch h {
	case env.HashBLAKE2b:
		suite.hash = hashBLAKE2b
	case env.HashSHA256:
		suite.hash = hashSHA256
	case env.HashSHA3:
		suite.hash = hashSHA3
	default:
		return nil, fmt.Errorf("%w: hash %v", env.ErrUnknownPrimitive, h)
	}

	s := config.GetStream()
	switch s {
	case env.StreamChaCha20:
		suite.expand = expandChaCha20
	case env.StreamSHAKE256:
		suite.expand = expandSHAKE256
	case env.StreamAESCTR:
		suite.expand = expandAESCTR
	default:
		return nil, fmt.Errorf("%w: stream %v", env.ErrUnknownPrimitive, s)
	}
	suite.name = fmt.Sprintf("ristretto255-%s-%s", h, s)

	return suite, nil
}

// Name returns the suite name. Peers must use suites with equal
// names.
func (suite *Suite) Name() string {
	return suite.name
}

// Generator returns the group generator.
func (suite *Suite) Generator() *Point {
	return new(Point).set(&suite.g)
}

// Decode decodes the canonical point encoding. The function rejects
// malformed encodings and the identity element with
// ErrInvalidEncoding.
func (suite *Suite) Decode(data []byte) (*Point, error) {
	return decodePoint(data)
}

func (suite *Suite) encode(p *Point) []byte {
	return p.Bytes()
}

// randomScalar samples a uniform non-zero scalar.
func (suite *Suite) randomScalar() (*Scalar, error) {
	var buf [64]byte
	result := new(Scalar)

	for {
		if _, err := io.ReadFull(suite.rand, buf[:]); err != nil {
			return nil, fmt.Errorf("ot: random scalar: %w", err)
		}
		result.s.SetReduced(&buf)
		if !result.isZero() {
			break
		}
	}
	for i := range buf {
		buf[i] = 0
	}
	return result, nil
}

// scalarMul computes s·p.
func (suite *Suite) scalarMul(s *Scalar, p *Point) *Point {
	result := new(Point)
	result.p.ScalarMult(&p.p, &s.s)
	return result
}

// scalarBaseMul computes s·G.
func (suite *Suite) scalarBaseMul(s *Scalar) *Point {
	return suite.scalarMul(s, &suite.g)
}

// pointAdd computes a+b.
func (suite *Suite) pointAdd(a, b *Point) *Point {
	result := new(Point)
	result.p.Add(&a.p, &b.p)
	return result
}

// pointSub computes a-b.
func (suite *Suite) pointSub(a, b *Point) *Point {
	result := new(Point)
	result.p.Sub(&a.p, &b.p)
	return result
}

// deriveKey derives the branch key from the point.
func (suite *Suite) deriveKey(p *Point) []byte {
	return suite.hash(suite.encode(p))
}

// mask returns data XOR expand(key, len(data)) in a new slice.
func (suite *Suite) mask(key, data []byte) []byte {
	return xor(suite.expand(key, len(data)), data)
}

func hashBLAKE2b(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

func hashSHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func hashSHA3(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

func expandChaCha20(key []byte, n int) []byte {
	var nonce [chacha20.NonceSize]byte

	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		panic(err)
	}
	out := make([]byte, n)
	stream.XORKeyStream(out, out)
	return out
}

func expandSHAKE256(key []byte, n int) []byte {
	shake := sha3.NewShake256()
	shake.Write(key)

	out := make([]byte, n)
	shake.Read(out)
	return out
}

func expandAESCTR(key []byte, n int) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	var iv [aes.BlockSize]byte
	stream := cipher.NewCTR(block, iv[:])

	out := make([]byte, n)
	stream.XORKeyStream(out, out)
	return out
}

// xor sets dst to dst XOR src and returns dst. The slices must have
// equal lengths.
func xor(dst, src []byte) []byte {
	for i := 0; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
	return dst
}
