//
// io.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"sync/atomic"
)

// IO defines an I/O interface to communicate between peers. The
// caller owns the underlying transport.
type IO interface {
	// SendData sends binary data.
	SendData(val []byte) error

	// SendUint32 sends an uint32 value.
	SendUint32(val int) error

	// Flush flushed any pending data in the connection.
	Flush() error

	// ReceiveData receives binary data.
	ReceiveData() ([]byte, error)

	// ReceiveUint32 receives an uint32 value.
	ReceiveUint32() (int, error)
}

// SendString sends a string value.
func SendString(io IO, str string) error {
	return io.SendData([]byte(str))
}

// ReceiveString receives a string value.
func ReceiveString(io IO) (string, error) {
	data, err := io.ReceiveData()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SendReply sends the reply.
func SendReply(io IO, reply *Reply) error {
	if err := io.SendData(reply.C0); err != nil {
		return err
	}
	if err := io.SendData(reply.C1); err != nil {
		return err
	}
	return io.Flush()
}

// ReceiveReply receives a reply.
func ReceiveReply(io IO) (*Reply, error) {
	c0, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	// The next ReceiveData may reuse the buffer.
	c0 = append([]byte{}, c0...)

	c1, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	return &Reply{
		C0: c0,
		C1: append([]byte{}, c1...),
	}, nil
}

// IOStats implements I/O statistics.
type IOStats struct {
	Sent    *atomic.Uint64
	Recvd   *atomic.Uint64
	Flushed *atomic.Uint64
}

// NewIOStats creates a new I/O statistics object.
func NewIOStats() IOStats {
	return IOStats{
		Sent:    new(atomic.Uint64),
		Recvd:   new(atomic.Uint64),
		Flushed: new(atomic.Uint64),
	}
}

// Add adds the argument stats to this IOStats and returns the sum.
func (stats IOStats) Add(o IOStats) IOStats {
	result := NewIOStats()
	result.Sent.Store(stats.Sent.Load() + o.Sent.Load())
	result.Recvd.Store(stats.Recvd.Load() + o.Recvd.Load())
	result.Flushed.Store(stats.Flushed.Load() + o.Flushed.Load())
	return result
}

// Sum returns sum of sent and received bytes.
func (stats IOStats) Sum() uint64 {
	return stats.Sent.Load() + stats.Recvd.Load()
}
