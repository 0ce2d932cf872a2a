//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/otc/env"
	"github.com/markkurossi/otc/ot"
)

func TestMessages(t *testing.T) {
	m0, m1, err := messages("abc", "de", false)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), m0)
	assert.Equal(t, []byte("de"), m1)

	m0, m1, err = messages("00ff", "", true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, m0)
	assert.Len(t, m1, 0)

	_, _, err = messages("zz", "00", true)
	assert.Error(t, err)
	_, _, err = messages("00", "0", true)
	assert.Error(t, err)
}

func TestServeReceive(t *testing.T) {
	suite, err := ot.NewSuite(&env.Config{
		Rand: env.NewSeededReader([]byte("demo")),
	})
	require.NoError(t, err)
	sender, err := ot.NewSender(suite)
	require.NoError(t, err)

	receiverSuite, err := ot.NewSuite(nil)
	require.NoError(t, err)

	m0 := make([]byte, 16)
	m1 := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}

	for _, bit := range []ot.Bit{1, 0} {
		sPipe, rPipe := ot.NewPipe()
		done := make(chan error, 1)
		go func() {
			done <- serve(sender, sPipe, m0, m1)
		}()

		data, err := receive(ot.NewReceiver(receiverSuite), rPipe, bit)
		require.NoError(t, err)
		require.NoError(t, <-done)

		if bit == 0 {
			assert.Equal(t, m0, data)
		} else {
			assert.Equal(t, m1, data)
		}
	}
}
