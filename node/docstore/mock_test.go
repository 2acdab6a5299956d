/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninitialized(t *testing.T) {
	m := NewMock("", nil)
	ctx := context.Background()
	assert.False(t, m.Initialize("  "))

	_, err := m.StoreFile(ctx, File{Name: "a.pdf"})
	assert.True(t, errors.Is(err, ErrUninitialized))
	_, err = m.RetrieveFile(ctx, "mock-cid-1")
	assert.True(t, errors.Is(err, ErrUninitialized))
	_, err = m.EncryptFile(ctx, File{}, "pk")
	assert.True(t, errors.Is(err, ErrUninitialized))

	assert.Equal(t, "https://bafy.ipfs.dweb.link", m.ShareableLink("bafy"))
}

func TestMock(t *testing.T) {
	m := NewMock("https://w3s.link/", nil)
	m.now = func() time.Time { return time.UnixMilli(1681554600000) }
	require.True(t, m.Initialize("secret-key"))
	ctx := context.Background()

	in := File{Name: "degree.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}
	sealed, err := m.EncryptFile(ctx, in, "0xpub")
	require.NoError(t, err)
	assert.Equal(t, in, sealed)

	cid, err := m.StoreFile(ctx, sealed)
	require.NoError(t, err)
	assert.Equal(t, "mock-cid-1681554600000", cid)

	f, err := m.RetrieveFile(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, &File{Name: "mock-file.txt", ContentType: "text/plain", Data: []byte("mock content")}, f)

	assert.Equal(t, "https://mock-cid-1681554600000.w3s.link", m.ShareableLink(cid))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "****", mask("abc"))
	assert.Equal(t, "secr******", mask("secret-key"))
}
