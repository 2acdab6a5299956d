/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package node

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/ecertify/ecertify/pkg/confile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T, apiKey string) *confile.Confile {
	t.Helper()
	cfg := confile.NewConfigFile()
	require.NoError(t, cfg.SetWorkspace(filepath.Join(t.TempDir(), "ws")))
	require.NoError(t, cfg.SetServicePort(18080))
	cfg.SetStorageApiKey(apiKey)
	return cfg
}

func TestInitNode(t *testing.T) {
	n, err := NewNodeWithConfig(newConfig(t, "")).InitNode()
	require.NoError(t, err)
	defer n.Close()

	assert.DirExists(t, n.GetDbDir())
	assert.FileExists(t, filepath.Join(n.GetLogDir(), "log.log"))
	assert.False(t, n.Store().IsInitialized())
	assert.False(t, n.GetStorageReady())
	assert.Equal(t, ":18080", n.GetComAddr())
	assert.NotNil(t, n.Registry())
}

func TestServe(t *testing.T) {
	n, err := NewNodeWithConfig(newConfig(t, "key")).InitNode()
	require.NoError(t, err)
	defer n.Close()
	assert.True(t, n.Store().IsInitialized())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/status", ln.Addr())
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	var body struct {
		Code int `json:"code"`
		Data struct {
			Visitors     int  `json:"visitors"`
			StorageReady bool `json:"storage_ready"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, 200, body.Code)
	assert.Equal(t, 0, body.Data.Visitors)
	assert.True(t, body.Data.StorageReady)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 0, n.Registry().Len())
}
