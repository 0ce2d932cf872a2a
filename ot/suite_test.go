//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/otc/env"
)

func TestSuiteName(t *testing.T) {
	assert.Equal(t, "ristretto255-blake2b-chacha20", newTestSuite(t, nil).Name())
	assert.Equal(t, "ristretto255-sha3-aes-ctr", newTestSuite(t, &env.Config{
		Hash:   env.HashSHA3,
		Stream: env.StreamAESCTR,
	}).Name())

	_, err := NewSuite(&env.Config{Hash: env.Hash(99)})
	assert.True(t, errors.Is(err, env.ErrUnknownPrimitive))
	_, err = NewSuite(&env.Config{Stream: env.Stream(99)})
	assert.True(t, errors.Is(err, env.ErrUnknownPrimitive))
}

func TestGroupLaws(t *testing.T) {
	suite := newTestSuite(t, &env.Config{
		Rand: env.NewSeededReader([]byte("group laws")),
	})
	x, err := suite.randomScalar()
	require.NoError(t, err)
	y, err := suite.randomScalar()
	require.NoError(t, err)

	X := suite.scalarBaseMul(x)
	Y := suite.scalarBaseMul(y)

	// x(yG) == y(xG)
	assert.True(t, suite.scalarMul(x, Y).Equal(suite.scalarMul(y, X)))

	// (X + Y) - Y == X
	assert.True(t, suite.pointSub(suite.pointAdd(X, Y), Y).Equal(X))

	// 0·X is the identity and 1·X is X.
	zero := suite.scalarMul(bitScalar(0), X)
	assert.True(t, suite.pointAdd(zero, Y).Equal(Y))
	assert.True(t, suite.scalarMul(bitScalar(1), X).Equal(X))

	// The identity never passes decoding.
	_, err = suite.Decode(zero.Bytes())
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	// Encodings round trip.
	decoded, err := suite.Decode(X.Bytes())
	require.NoError(t, err)
	assert.True(t, decoded.Equal(X))
	assert.Equal(t, X.String(), decoded.String())

	assert.True(t, suite.Generator().Equal(suite.scalarBaseMul(bitScalar(1))))
}

func TestRandomScalar(t *testing.T) {
	a := newTestSuite(t, &env.Config{
		Rand: env.NewSeededReader([]byte("scalar")),
	})
	b := newTestSuite(t, &env.Config{
		Rand: env.NewSeededReader([]byte("scalar")),
	})
	for i := 0; i < 8; i++ {
		sa, err := a.randomScalar()
		require.NoError(t, err)
		sb, err := b.randomScalar()
		require.NoError(t, err)
		assert.False(t, sa.isZero())
		assert.True(t, a.scalarBaseMul(sa).Equal(b.scalarBaseMul(sb)))
	}

	failing := newTestSuite(t, &env.Config{
		Rand: bytes.NewReader(make([]byte, 10)),
	})
	_, err := failing.randomScalar()
	assert.Error(t, err)

	_, err = NewSender(failing)
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	expanders := map[string]func([]byte, int) []byte{
		"chacha20": expandChaCha20,
		"shake256": expandSHAKE256,
		"aes-ctr":  expandAESCTR,
	}
	for name, expand := range expanders {
		assert.Len(t, expand(key, 0), 0, name)

		long := expand(key, 1000)
		assert.Len(t, long, 1000, name)

		// Keystreams are deterministic and prefix consistent.
		assert.Equal(t, long[:77], expand(key, 77), name)
		assert.NotEqual(t, make([]byte, 64), long[:64], name)

		other := bytes.Repeat([]byte{0x43}, KeySize)
		assert.NotEqual(t, long[:64], expand(other, 64), name)
	}
}

func TestHash(t *testing.T) {
	for name, hash := range map[string]func([]byte) []byte{
		"blake2b": hashBLAKE2b,
		"sha256":  hashSHA256,
		"sha3":    hashSHA3,
	} {
		a := hash([]byte("a"))
		assert.Len(t, a, KeySize, name)
		assert.Equal(t, a, hash([]byte("a")), name)
		assert.NotEqual(t, a, hash([]byte("b")), name)
	}
}

func TestSelectCipher(t *testing.T) {
	c0 := []byte{1, 2, 3}
	c1 := []byte{4, 5, 6, 7, 8}

	assert.Equal(t, c0, selectCipher(0, c0, c1))
	assert.Equal(t, c1, selectCipher(1, c0, c1))
	assert.Equal(t, c1, selectCipher(0, c1, c0))
	assert.Equal(t, c0, selectCipher(1, c1, c0))
	assert.Len(t, selectCipher(0, nil, c1), 0)
	assert.Len(t, selectCipher(1, c0, nil), 0)
}
