/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

// Package docstore is the content-addressed document storage client.
package docstore

import (
	"context"

	"github.com/pkg/errors"
)

var ErrUninitialized = errors.New("document store client not initialized")

type File struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

type Store interface {
	Initialize(apiKey string) bool
	IsInitialized() bool
	// EncryptFile seals a document for publicKey before it is stored.
	EncryptFile(ctx context.Context, f File, publicKey string) (File, error)
	// StoreFile returns the content identifier of f.
	StoreFile(ctx context.Context, f File) (string, error)
	RetrieveFile(ctx context.Context, cid string) (*File, error)
	// ShareableLink needs no initialization.
	ShareableLink(cid string) string
}
