//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/otc/env"
)

func TestProtocol(t *testing.T) {
	suite := newTestSuite(t, nil)
	sender, err := NewSender(suite)
	require.NoError(t, err)
	receiver := NewReceiver(suite)

	m0 := []byte("protocol message zero")
	m1 := []byte("protocol message one")

	for _, bit := range []Bit{0, 1, 1, 0} {
		sPipe, rPipe := NewPipe()
		done := make(chan error, 1)

		go func() {
			if err := sender.Announce(sPipe); err != nil {
				sPipe.CloseWithError(err)
				done <- err
				return
			}
			err := sender.Serve(sPipe, m0, m1)
			if err != nil {
				sPipe.CloseWithError(err)
			}
			done <- err
		}()

		public, err := receiver.Accept(rPipe)
		require.NoError(t, err)
		assert.Equal(t, sender.Public(), public)

		result, err := receiver.Receive(rPipe, public, bit)
		require.NoError(t, err)
		require.NoError(t, <-done)

		if bit == 0 {
			assert.Equal(t, m0, result)
		} else {
			assert.Equal(t, m1, result)
		}
		assert.Equal(t, sPipe.Stats.Sent.Load(), rPipe.Stats.Recvd.Load())
		assert.Equal(t, rPipe.Stats.Sent.Load(), sPipe.Stats.Recvd.Load())
	}
}

func TestProtocolSuiteMismatch(t *testing.T) {
	sender, err := NewSender(newTestSuite(t, nil))
	require.NoError(t, err)
	receiver := NewReceiver(newTestSuite(t, &env.Config{
		Hash: env.HashSHA256,
	}))

	sPipe, rPipe := NewPipe()
	done := make(chan error, 1)
	go func() {
		done <- sender.Announce(sPipe)
	}()

	_, err = receiver.Accept(rPipe)
	assert.ErrorIs(t, err, ErrSuiteMismatch)

	// Unblock the sender's pending write.
	rPipe.CloseWithError(err)
	assert.Error(t, <-done)
}

func TestProtocolInvalidPublicKey(t *testing.T) {
	suite := newTestSuite(t, nil)
	receiver := NewReceiver(suite)

	sPipe, rPipe := NewPipe()
	go func() {
		if err := SendString(sPipe, suite.Name()); err != nil {
			return
		}
		sPipe.SendData(make([]byte, PointSize))
	}()

	_, err := receiver.Accept(rPipe)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestProtocolInvalidQuery(t *testing.T) {
	suite := newTestSuite(t, nil)
	sender, err := NewSender(suite)
	require.NoError(t, err)

	sPipe, rPipe := NewPipe()
	go func() {
		rPipe.SendData([]byte("not a point"))
	}()

	err = sender.Serve(sPipe, []byte("m0"), []byte("m1"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
