/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const student = "0x52908400098527886E0F7030069857D2E4169EE7"

func TestUninitialized(t *testing.T) {
	m := NewMock(nil)
	ctx := context.Background()
	assert.False(t, m.IsInitialized())

	_, err := m.IssueCertificate(ctx, student, "Qm", "{}")
	assert.True(t, errors.Is(err, ErrUninitialized))
	_, err = m.GetCertificate(ctx, 1)
	assert.True(t, errors.Is(err, ErrUninitialized))
	_, err = m.VerifyCertificate(ctx, 1)
	assert.True(t, errors.Is(err, ErrUninitialized))
	_, err = m.RevokeCertificate(ctx, 1)
	assert.True(t, errors.Is(err, ErrUninitialized))

	assert.False(t, m.Initialize(nil))
	assert.Nil(t, m.Signer())
}

func TestMock(t *testing.T) {
	m := NewMock(nil)
	m.now = func() time.Time { return time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC) }
	require.True(t, m.Initialize(AddressSigner(student)))
	assert.Equal(t, student, m.Signer().Address())
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		id, err := m.IssueCertificate(ctx, student, "Qm", "{}")
		require.NoError(t, err)
		assert.Less(t, id, uint64(1000000))
	}

	cert, err := m.GetCertificate(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "0x1234567890123456789012345678901234567890", cert.Issuer)
	assert.Equal(t, "Qm...", cert.DocumentHash)
	assert.Equal(t, int64(1681554600000), cert.Timestamp)

	var meta map[string]string
	require.NoError(t, json.Unmarshal([]byte(cert.Metadata), &meta))
	assert.Equal(t, map[string]string{
		"name":   "Sample Certificate",
		"course": "Blockchain Development",
		"date":   "2023-04-15T10:30:00.000Z",
	}, meta)

	ok, err := m.VerifyCertificate(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = m.RevokeCertificate(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanceled(t *testing.T) {
	m := NewMock(nil)
	m.Initialize(AddressSigner(student))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.VerifyCertificate(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
