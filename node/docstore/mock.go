/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package docstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/pkg/logger"
)

type Mock struct {
	lock    sync.RWMutex
	apiKey  string
	gateway string
	log     logger.Logger
	now     func() time.Time
}

var _ Store = (*Mock)(nil)

// NewMock builds links under gateway, ipfs.dweb.link when empty.
func NewMock(gateway string, log logger.Logger) *Mock {
	gateway = strings.Trim(strings.TrimPrefix(gateway, "https://"), "/")
	if gateway == "" {
		gateway = configs.DefaultGateway
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Mock{
		gateway: gateway,
		log:     log,
		now:     time.Now,
	}
}

func (m *Mock) Initialize(apiKey string) bool {
	apiKey = strings.TrimSpace(apiKey)
	m.lock.Lock()
	m.apiKey = apiKey
	m.lock.Unlock()
	if apiKey != "" {
		m.log.Storage("info", fmt.Sprintf("initialize with key %s", mask(apiKey)))
	}
	return m.IsInitialized()
}

func (m *Mock) IsInitialized() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.apiKey != ""
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

// EncryptFile returns f unchanged until an encryption scheme is chosen.
func (m *Mock) EncryptFile(ctx context.Context, f File, publicKey string) (File, error) {
	if err := m.ready(ctx); err != nil {
		return File{}, err
	}
	m.log.Storage("info", fmt.Sprintf("encrypt %s for %s", f.Name, publicKey))
	return f, nil
}

func (m *Mock) StoreFile(ctx context.Context, f File) (string, error) {
	if err := m.ready(ctx); err != nil {
		return "", err
	}
	cid := fmt.Sprintf("mock-cid-%d", m.now().UnixMilli())
	m.log.Storage("info", fmt.Sprintf("store %s (%s, %d bytes) as %s", f.Name, f.ContentType, len(f.Data), cid))
	return cid, nil
}

func (m *Mock) RetrieveFile(ctx context.Context, cid string) (*File, error) {
	if err := m.ready(ctx); err != nil {
		return nil, err
	}
	m.log.Storage("info", fmt.Sprintf("retrieve %s", cid))
	return &File{
		Name:        "mock-file.txt",
		ContentType: "text/plain",
		Data:        []byte("mock content"),
	}, nil
}

func (m *Mock) ShareableLink(cid string) string {
	return fmt.Sprintf("https://%s.%s", cid, m.gateway)
}

func mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
