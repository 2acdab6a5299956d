/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

// Package cache is the small persistent key-value store of the gateway.
package cache

import "io"

type Reader interface {
	Has(key []byte) (bool, error)

	// Get returns an error satisfying IsNotFound for a missing key.
	Get(key []byte) ([]byte, error)

	// QueryPrefix returns every entry whose key starts with prefix, keyed by
	// the rest of the key.
	QueryPrefix(prefix string) (map[string][]byte, error)
}

type Writer interface {
	Put(key []byte, value []byte) error

	// Delete of a missing key is not an error.
	Delete(key []byte) error
}

type Cache interface {
	Reader
	Writer
	io.Closer
}
