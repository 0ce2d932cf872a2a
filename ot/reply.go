//
// reply.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"encoding/binary"
	"fmt"
)

var bo = binary.BigEndian

// Reply holds the sender's encrypted messages. The ciphertext C0
// encrypts m0 and C1 encrypts m1; the ciphertexts have the same
// lengths as their messages.
type Reply struct {
	C0 []byte
	C1 []byte
}

func (r *Reply) String() string {
	return fmt.Sprintf("c0=%x, c1=%x", r.C0, r.C1)
}

// MarshalBinary encodes the reply as length-prefixed ciphertexts.
func (r *Reply) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 8+len(r.C0)+len(r.C1))
	buf = bo.AppendUint32(buf, uint32(len(r.C0)))
	buf = append(buf, r.C0...)
	buf = bo.AppendUint32(buf, uint32(len(r.C1)))
	buf = append(buf, r.C1...)
	return buf, nil
}

// UnmarshalBinary decodes the reply from its MarshalBinary encoding.
func (r *Reply) UnmarshalBinary(data []byte) error {
	c0, rest, err := readChunk(data)
	if err != nil {
		return err
	}
	c1, rest, err := readChunk(rest)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidReply, len(rest))
	}
	r.C0 = c0
	r.C1 = c1
	return nil
}

func readChunk(data []byte) ([]byte, []byte, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: truncated length", ErrInvalidReply)
	}
	l := uint64(bo.Uint32(data))
	data = data[4:]
	if l > uint64(len(data)) {
		return nil, nil, fmt.Errorf("%w: truncated data: %d > %d",
			ErrInvalidReply, l, len(data))
	}
	return append([]byte{}, data[:l]...), data[l:], nil
}
