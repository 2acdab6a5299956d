/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package console

import (
	"os"
	"path/filepath"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/pkg/confile"
	out "github.com/ecertify/ecertify/pkg/fout"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	default_cmd       = "default"
	default_cmd_short = "Generate configuration file"
)

var defaultCmd = &cobra.Command{
	Use:                   default_cmd,
	Aliases:               []string{"config"},
	Short:                 default_cmd_short,
	Run:                   defaultCmdFunc,
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.AddCommand(defaultCmd)
}

// defaultCmdFunc generate a configuration file template
func defaultCmdFunc(cmd *cobra.Command, args []string) {
	pwd, err := os.Getwd()
	if err != nil {
		out.Err(err.Error())
		return
	}
	fpath, err := writeProfile(pwd)
	if err != nil {
		out.Err(err.Error())
		return
	}
	out.Ok(fpath)
}

// writeProfile refuses to overwrite an existing profile.
func writeProfile(dir string) (string, error) {
	fpath := filepath.Join(dir, confile.DefaultProfile)
	if _, err := os.Stat(fpath); err == nil {
		return "", errors.Errorf("<%v> already exists", fpath)
	}
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, configs.FileMode)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err = f.WriteString(confile.TempleteProfile); err != nil {
		return "", err
	}
	return fpath, f.Sync()
}
