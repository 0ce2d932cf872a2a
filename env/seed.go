//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"io"

	"github.com/dchest/blake2b"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

var seedInfo = []byte("otc seeded reader v1")

// SeededReader is a deterministic source of pseudo-random bytes. It
// is intended for tests and reproducible demos; production key pairs
// must use crypto/rand.
type SeededReader struct {
	stream *chacha20.Cipher
}

// NewSeededReader creates a deterministic reader from the seed. Equal
// seeds produce equal byte streams.
func NewSeededReader(seed []byte) *SeededReader {
	var okm [chacha20.KeySize + chacha20.NonceSize]byte

	kdf := hkdf.New(blake2b.New512, seed, nil, seedInfo)
	if _, err := io.ReadFull(kdf, okm[:]); err != nil {
		panic(err)
	}
	stream, err := chacha20.NewUnauthenticatedCipher(
		okm[:chacha20.KeySize], okm[chacha20.KeySize:])
	if err != nil {
		panic(err)
	}
	return &SeededReader{
		stream: stream,
	}
}

// Read fills p with the next bytes of the seeded stream.
func (r *SeededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
