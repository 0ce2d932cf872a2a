//
// pipe.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"fmt"
	"io"
)

var (
	_ IO = &Pipe{}
)

const maxFrameSize = 64 * 1024 * 1024

// Pipe implements the IO interface with in-memory io.Pipe. Anything
// sent to one endpoint can be received from the other and vice versa.
type Pipe struct {
	rBuf  []byte
	hdr   [4]byte
	r     *io.PipeReader
	w     *io.PipeWriter
	Stats IOStats
}

// NewPipe creates a new in-memory pipe and returns its two endpoints.
func NewPipe() (*Pipe, *Pipe) {
	ar, aw := io.Pipe()
	br, bw := io.Pipe()

	return &Pipe{
			rBuf:  make([]byte, 4096),
			r:     ar,
			w:     bw,
			Stats: NewIOStats(),
		}, &Pipe{
			rBuf:  make([]byte, 4096),
			r:     br,
			w:     aw,
			Stats: NewIOStats(),
		}
}

// SendData sends binary data.
func (p *Pipe) SendData(val []byte) error {
	l := len(val)
	if l > maxFrameSize {
		return fmt.Errorf("pipe frame too long: %d > %d", l, maxFrameSize)
	}
	frame := make([]byte, 4+l)
	bo.PutUint32(frame, uint32(l))
	copy(frame[4:], val)

	n, err := p.w.Write(frame)
	p.Stats.Sent.Add(uint64(n))
	return err
}

// SendUint32 sends an uint32 value.
func (p *Pipe) SendUint32(val int) error {
	var buf [4]byte
	bo.PutUint32(buf[:], uint32(val))

	n, err := p.w.Write(buf[:])
	p.Stats.Sent.Add(uint64(n))
	return err
}

// Flush flushed any pending data in the connection.
func (p *Pipe) Flush() error {
	p.Stats.Flushed.Add(1)
	return nil
}

// Drain consumes all input from the pipe.
func (p *Pipe) Drain() error {
	_, err := io.Copy(io.Discard, p.r)
	return err
}

// Close closes the pipe's write direction. The peer receives io.EOF
// after it has consumed all data.
func (p *Pipe) Close() error {
	return p.w.Close()
}

// CloseWithError closes the pipe in both directions with the error.
// Pending and future operations of both endpoints fail with err.
func (p *Pipe) CloseWithError(err error) {
	p.w.CloseWithError(err)
	p.r.CloseWithError(err)
}

// ReceiveData receives binary data. The returned slice is valid until
// the next ReceiveData call.
func (p *Pipe) ReceiveData() ([]byte, error) {
	l, err := p.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if l > maxFrameSize {
		return nil, fmt.Errorf("pipe frame too long: %d > %d",
			l, maxFrameSize)
	}
	if l > len(p.rBuf) {
		p.rBuf = make([]byte, l)
	}
	n, err := io.ReadFull(p.r, p.rBuf[:l])
	p.Stats.Recvd.Add(uint64(n))
	if err != nil {
		return nil, err
	}
	return p.rBuf[:l], nil
}

// ReceiveUint32 receives an uint32 value.
func (p *Pipe) ReceiveUint32() (int, error) {
	n, err := io.ReadFull(p.r, p.hdr[:])
	p.Stats.Recvd.Add(uint64(n))
	if err != nil {
		return 0, err
	}
	return int(bo.Uint32(p.hdr[:])), nil
}
