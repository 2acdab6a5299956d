/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/pkg/errors"
)

const (
	maxCertificateID = 1000000
	mockIssuer       = "0x1234567890123456789012345678901234567890"
	mockHash         = "Qm..."
)

type metadata struct {
	Name   string `json:"name"`
	Course string `json:"course"`
	Date   string `json:"date"`
}

// Mock answers every call with synthetic values and records it in the
// ledger log.
type Mock struct {
	lock   sync.RWMutex
	signer Signer
	log    logger.Logger
	rand   *rand.Rand
	now    func() time.Time
}

var _ Ledger = (*Mock)(nil)

func NewMock(log logger.Logger) *Mock {
	if log == nil {
		log = logger.Discard()
	}
	return &Mock{
		log:  log,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

func (m *Mock) Initialize(signer Signer) bool {
	m.lock.Lock()
	m.signer = signer
	m.lock.Unlock()
	if signer != nil {
		m.log.Ledger("info", fmt.Sprintf("initialize with signer %s at %s", signer.Address(), ContractAddress))
	} else {
		m.log.Ledger("info", "signer released")
	}
	return m.IsInitialized()
}

// Signer is nil until Initialize is given one.
func (m *Mock) Signer() Signer {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.signer
}

func (m *Mock) IsInitialized() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.signer != nil
}

func (m *Mock) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.IsInitialized() {
		return ErrUninitialized
	}
	return nil
}

func (m *Mock) IssueCertificate(ctx context.Context, studentAddress, documentHash, meta string) (uint64, error) {
	if err := m.ready(ctx); err != nil {
		return 0, err
	}
	m.log.Ledger("info", fmt.Sprintf("%s: issue to %s with document hash %s", MethodIssue, studentAddress, documentHash))
	m.lock.Lock()
	id := uint64(m.rand.Int63n(maxCertificateID))
	m.lock.Unlock()
	return id, nil
}

func (m *Mock) GetCertificate(ctx context.Context, id uint64) (Certificate, error) {
	if err := m.ready(ctx); err != nil {
		return Certificate{}, err
	}
	m.log.Ledger("info", fmt.Sprintf("%s: %d", MethodGet, id))
	now := m.now()
	meta, err := json.Marshal(metadata{
		Name:   "Sample Certificate",
		Course: "Blockchain Development",
		Date:   now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return Certificate{}, errors.Wrap(err, "[Marshal]")
	}
	return Certificate{
		Issuer:       mockIssuer,
		DocumentHash: mockHash,
		Metadata:     string(meta),
		Timestamp:    now.UnixMilli(),
	}, nil
}

func (m *Mock) VerifyCertificate(ctx context.Context, id uint64) (bool, error) {
	if err := m.ready(ctx); err != nil {
		return false, err
	}
	m.log.Ledger("info", fmt.Sprintf("%s: %d", MethodVerify, id))
	return true, nil
}

func (m *Mock) RevokeCertificate(ctx context.Context, id uint64) (bool, error) {
	if err := m.ready(ctx); err != nil {
		return false, err
	}
	m.log.Ledger("info", fmt.Sprintf("%s: %d", MethodRevoke, id))
	return true, nil
}
