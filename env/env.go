//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the OT system.
package env

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownPrimitive is returned for unsupported hash or keystream
// names.
var ErrUnknownPrimitive = errors.New("env: unknown primitive")

// Hash identifies the hash function used to derive branch keys from
// Diffie-Hellman points.
type Hash int

// Hash functions.
const (
	HashDefault Hash = iota
	HashBLAKE2b
	HashSHA256
	HashSHA3
)

var hashNames = map[Hash]string{
	HashBLAKE2b: "blake2b",
	HashSHA256:  "sha256",
	HashSHA3:    "sha3",
}

func (h Hash) String() string {
	name, ok := hashNames[h]
	if ok {
		return name
	}
	if h == HashDefault {
		return hashNames[HashBLAKE2b]
	}
	return fmt.Sprintf("{Hash %d}", h)
}

// ParseHash parses the hash function name.
func ParseHash(name string) (Hash, error) {
	name = strings.ToLower(name)
	for k, v := range hashNames {
		if v == name {
			return k, nil
		}
	}
	return HashDefault, fmt.Errorf("%w: hash %q", ErrUnknownPrimitive, name)
}

// Stream identifies the keystream expander used to mask payloads.
type Stream int

// Keystream expanders.
const (
	StreamDefault Stream = iota
	StreamChaCha20
	StreamSHAKE256
	StreamAESCTR
)

var streamNames = map[Stream]string{
	StreamChaCha20: "chacha20",
	StreamSHAKE256: "shake256",
	StreamAESCTR:   "aes-ctr",
}

func (s Stream) String() string {
	name, ok := streamNames[s]
	if ok {
		return name
	}
	if s == StreamDefault {
		return streamNames[StreamChaCha20]
	}
	return fmt.Sprintf("{Stream %d}", s)
}

// ParseStream parses the keystream expander name.
func ParseStream(name string) (Stream, error) {
	name = strings.ToLower(name)
	for k, v := range streamNames {
		if v == name {
			return k, nil
		}
	}
	return StreamDefault, fmt.Errorf("%w: stream %q", ErrUnknownPrimitive,
		name)
}

// Config defines the global system configuration for the OT system.
// Config must not be modified after being passed to any OT module. It
// is safe for concurrent use by multiple modules as they do not
// modify it.
type Config struct {
	Rand   io.Reader
	Hash   Hash
	Stream Stream
}

// GetRandom returns the source of entropy for key pairs and transfer
// scalars.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetHash returns the configured key hash function.
func (config *Config) GetHash() Hash {
	if config == nil || config.Hash == HashDefault {
		return HashBLAKE2b
	}
	return config.Hash
}

// GetStream returns the configured keystream expander.
func (config *Config) GetStream() Stream {
	if config == nil || config.Stream == StreamDefault {
		return StreamChaCha20
	}
	return config.Stream
}
