/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package workspace

import (
	"os"
	"path/filepath"

	"github.com/ecertify/ecertify/configs"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/disk"
)

// minFreeSpace below which Check reports a warning
const minFreeSpace = 256 << 20

type Workspace interface {
	Build() error
	RemoveAndBuild() error
	// Check returns a non-empty warning when the workspace disk runs low.
	Check() (string, error)
	GetRootDir() string
	GetDbDir() string
	GetLogDir() string
}

type workspace struct {
	rootDir string
	dbDir   string
	logDir  string
}

var _ Workspace = (*workspace)(nil)

func NewWorkspace(ws string) Workspace {
	return &workspace{rootDir: ws}
}

func (w *workspace) Build() error {
	if w.rootDir == "" {
		return errors.New("Please initialize the workspace first")
	}
	w.dbDir = filepath.Join(w.rootDir, configs.DbDir)
	if err := os.MkdirAll(w.dbDir, configs.DirMode); err != nil {
		return err
	}
	w.logDir = filepath.Join(w.rootDir, configs.LogDir)
	return os.MkdirAll(w.logDir, configs.DirMode)
}

// RemoveAndBuild drops the role database and the logs.
func (w *workspace) RemoveAndBuild() error {
	if w.rootDir == "" {
		return errors.New("Please initialize the workspace first")
	}
	if err := os.RemoveAll(filepath.Join(w.rootDir, configs.DbDir)); err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(w.rootDir, configs.LogDir)); err != nil {
		return err
	}
	return w.Build()
}

func (w *workspace) Check() (string, error) {
	usage, err := disk.Usage(w.rootDir)
	if err != nil {
		return "", errors.Wrap(err, "check workspace")
	}
	if usage.Free < minFreeSpace {
		return "Your free space in workspace is less than 256MiB, logs and the role database may fail to write", nil
	}
	return "", nil
}

func (w *workspace) GetRootDir() string {
	return w.rootDir
}

func (w *workspace) GetDbDir() string {
	return w.dbDir
}

func (w *workspace) GetLogDir() string {
	return w.logDir
}
