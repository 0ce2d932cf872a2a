//
// protocol.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"fmt"
)

// Announce sends the sender's suite name and public key to the
// receiver.
func (s *Sender) Announce(io IO) error {
	if err := SendString(io, s.suite.Name()); err != nil {
		return err
	}
	if err := io.SendData(s.Public()); err != nil {
		return err
	}
	return io.Flush()
}

// Serve serves one transfer of the messages m0 and m1: it receives
// the receiver's query and sends the reply.
func (s *Sender) Serve(io IO, m0, m1 []byte) error {
	query, err := io.ReceiveData()
	if err != nil {
		return err
	}
	reply, err := s.Reply(query, m0, m1)
	if err != nil {
		return err
	}
	return SendReply(io, reply)
}

// Accept receives the sender's announcement. It verifies that the
// sender uses the receiver's suite and returns the sender's public
// key.
func (r *Receiver) Accept(io IO) ([]byte, error) {
	name, err := ReceiveString(io)
	if err != nil {
		return nil, err
	}
	if name != r.suite.Name() {
		return nil, fmt.Errorf("%w: got %s, expected %s",
			ErrSuiteMismatch, name, r.suite.Name())
	}
	data, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	if _, err := r.suite.Decode(data); err != nil {
		return nil, fmt.Errorf("ot: sender public key: %w", err)
	}
	return append([]byte{}, data...), nil
}

// Receive runs one transfer with the selection bit: it sends the
// query, receives the sender's reply, and returns the selected
// message.
func (r *Receiver) Receive(io IO, senderPublic []byte, bit Bit) (
	[]byte, error) {

	query, xfer, err := r.Query(senderPublic, bit)
	if err != nil {
		return nil, err
	}
	if err := io.SendData(query); err != nil {
		return nil, err
	}
	if err := io.Flush(); err != nil {
		return nil, err
	}
	reply, err := ReceiveReply(io)
	if err != nil {
		return nil, err
	}
	return r.Elect(senderPublic, xfer, reply)
}
