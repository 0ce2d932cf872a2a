//
// main.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/markkurossi/otc/env"
	"github.com/markkurossi/otc/ot"
	"github.com/markkurossi/otc/timing"
	"github.com/markkurossi/text/superscript"
)

var verbose bool

// Debugf prints debugging message if verbose output is enabled.
func Debugf(format string, a ...interface{}) {
	if !verbose {
		return
	}
	fmt.Printf(format, a...)
}

type result struct {
	id   int
	bit  ot.Bit
	data []byte
	err  error
}

func main() {
	fBit := flag.Uint("bit", 0, "Selection bit of the first receiver")
	fM0 := flag.String("m0", "Message zero", "Sender message 0")
	fM1 := flag.String("m1", "Message one", "Sender message 1")
	fHex := flag.Bool("hex", false, "Messages are hex encoded")
	fSeed := flag.String("seed", "", "Sender key pair seed (testing only)")
	fHash := flag.String("hash", env.HashBLAKE2b.String(), "Key hash function")
	fStream := flag.String("stream", env.StreamChaCha20.String(),
		"Keystream expander")
	fN := flag.Int("n", 1, "Number of receivers")
	fTiming := flag.Bool("t", false, "Print timing report")
	fVerbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	verbose = *fVerbose

	if *fBit > 1 {
		log.Fatalf("invalid bit %d", *fBit)
	}
	if *fN < 1 {
		log.Fatalf("invalid number of receivers %d", *fN)
	}
	m0, m1, err := messages(*fM0, *fM1, *fHex)
	if err != nil {
		log.Fatal(err)
	}

	h, err := env.ParseHash(*fHash)
	if err != nil {
		log.Fatal(err)
	}
	s, err := env.ParseStream(*fStream)
	if err != nil {
		log.Fatal(err)
	}

	senderConfig := &env.Config{
		Hash:   h,
		Stream: s,
	}
	if len(*fSeed) > 0 {
		senderConfig.Rand = env.NewSeededReader([]byte(*fSeed))
	}
	receiverConfig := &env.Config{
		Hash:   h,
		Stream: s,
	}

	report := timing.NewTiming()

	senderSuite, err := ot.NewSuite(senderConfig)
	if err != nil {
		log.Fatal(err)
	}
	receiverSuite, err := ot.NewSuite(receiverConfig)
	if err != nil {
		log.Fatal(err)
	}
	sender, err := ot.NewSender(senderSuite)
	if err != nil {
		log.Fatal(err)
	}
	report.Sample("Keygen", nil)

	fmt.Printf("Suite     : %s\n", senderSuite.Name())
	fmt.Printf("Sender S  : %x\n", sender.Public())
	Debugf("Sender m0 : %x\n", m0)
	Debugf("Sender m1 : %x\n", m1)

	stats := ot.NewIOStats()
	results := make([]result, *fN)

	var wg sync.WaitGroup
	var m sync.Mutex
	for i := 0; i < *fN; i++ {
		sPipe, rPipe := ot.NewPipe()
		bit := ot.Bit(*fBit) ^ ot.Bit(i&1)

		wg.Add(2)
		go func() {
			defer wg.Done()
			err := serve(sender, sPipe, m0, m1)
			if err != nil {
				sPipe.CloseWithError(err)
			}
		}()
		go func(id int) {
			defer wg.Done()
			receiver := ot.NewReceiver(receiverSuite)
			data, err := receive(receiver, rPipe, bit)
			if err != nil {
				rPipe.CloseWithError(err)
			}
			results[id] = result{
				id:   id,
				bit:  bit,
				data: data,
				err:  err,
			}
			m.Lock()
			stats = stats.Add(rPipe.Stats)
			m.Unlock()
		}(i)
	}
	wg.Wait()

	xfer := report.Sample("Transfer", []string{
		timing.FileSize(stats.Sum()).String(),
	})
	xfer.AbsSubSample(fmt.Sprintf("%d×", *fN),
		xfer.End.Sub(xfer.Start)/time.Duration(*fN))

	var failed bool
	for _, r := range results {
		label := "Receiver" + superscript.Itoa(r.id+1)
		if r.err != nil {
			fmt.Printf("%s: %s\n", label, r.err)
			failed = true
			continue
		}
		expected := m0
		if r.bit == 1 {
			expected = m1
		}
		if *fHex {
			fmt.Printf("%s m%d: %x\n", label, r.bit, r.data)
		} else {
			fmt.Printf("%s m%d: %s\n", label, r.bit, r.data)
		}
		if !bytes.Equal(expected, r.data) {
			fmt.Printf("%s: verify failed!\n", label)
			failed = true
		}
	}
	if *fTiming {
		report.Print(os.Stdout, stats)
	}
	if failed {
		os.Exit(1)
	}
}

func messages(m0, m1 string, isHex bool) ([]byte, []byte, error) {
	if !isHex {
		return []byte(m0), []byte(m1), nil
	}
	d0, err := hex.DecodeString(m0)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid m0: %w", err)
	}
	d1, err := hex.DecodeString(m1)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid m1: %w", err)
	}
	return d0, d1, nil
}

func serve(sender *ot.Sender, io ot.IO, m0, m1 []byte) error {
	if err := sender.Announce(io); err != nil {
		return err
	}
	return sender.Serve(io, m0, m1)
}

func receive(receiver *ot.Receiver, io ot.IO, bit ot.Bit) ([]byte, error) {
	public, err := receiver.Accept(io)
	if err != nil {
		return nil, err
	}
	Debugf("Receiver: S=%x, bit=%v\n", public, bit)
	return receiver.Receive(io, public, bit)
}
