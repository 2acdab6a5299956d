/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package confile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	fpath := filepath.Join(t.TempDir(), DefaultProfile)
	require.NoError(t, os.WriteFile(fpath, []byte(content), 0644))
	return fpath
}

func TestParseTemplate(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "ws")
	content := "app:\n  workspace: \"" + ws + "\"\n  port: 9090\n  origins:\n    - \"http://localhost:5173\"\n" +
		"storage:\n  apikey: \"k-123\"\n  gateway: \"https://w3s.link/\"\n"
	cfg := NewConfigFile()
	err := cfg.Parse(writeProfile(t, content))
	require.NoError(t, err)

	assert.Equal(t, ws, cfg.ReadWorkspace())
	assert.Equal(t, uint16(9090), cfg.ReadServicePort())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.ReadAllowedOrigins())
	assert.Equal(t, "en", cfg.ReadLanguage())
	assert.Equal(t, "k-123", cfg.ReadStorageApiKey())
	assert.Equal(t, "w3s.link", cfg.ReadStorageGateway())
	assert.Equal(t, "https://metamask.io/download.html", cfg.ReadWalletInstallURL())

	fstat, err := os.Stat(ws)
	require.NoError(t, err)
	assert.True(t, fstat.IsDir())
}

func TestParseDefaultTemplate(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg := NewConfigFile()
	require.NoError(t, cfg.Parse(writeProfile(t, TempleteProfile)))
	assert.Equal(t, uint16(8080), cfg.ReadServicePort())
	assert.Equal(t, "ipfs.dweb.link", cfg.ReadStorageGateway())
	assert.Empty(t, cfg.ReadStorageApiKey())
}

func TestParseReservedPort(t *testing.T) {
	cfg := NewConfigFile()
	err := cfg.Parse(writeProfile(t, "app:\n  workspace: \""+t.TempDir()+"\"\n  port: 80\n"))
	assert.Error(t, err)
}

func TestParseDirectory(t *testing.T) {
	cfg := NewConfigFile()
	assert.Error(t, cfg.Parse(t.TempDir()))
}

func TestSetServicePort(t *testing.T) {
	cfg := NewConfigFile()
	assert.Error(t, cfg.SetServicePort(443))
	assert.NoError(t, cfg.SetServicePort(15001))
	assert.Equal(t, uint16(15001), cfg.ReadServicePort())
}
