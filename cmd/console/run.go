/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package console

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/node"
	"github.com/ecertify/ecertify/pkg/confile"
	out "github.com/ecertify/ecertify/pkg/fout"
	"github.com/howeyc/gopass"
	"github.com/spf13/cobra"
)

const (
	run_cmd       = "run"
	run_cmd_use   = "run"
	run_cmd_short = "Running through a configuration file"
)

var runCmd = &cobra.Command{
	Use:                   run_cmd_use,
	Short:                 run_cmd_short,
	Run:                   runCmdFunc,
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runCmd run the service with the configuration file
func runCmdFunc(cmd *cobra.Command, args []string) {
	n, err := node.NewNodeWithConfig(InitConfigFile(cmd)).InitNode()
	if err != nil {
		out.Err(fmt.Sprintf("init err: %v", err))
		os.Exit(1)
	}
	defer n.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out.Ok(fmt.Sprintf("%s %s listening on %s", configs.Name, configs.Version, n.GetComAddr()))
	if err = n.Start(ctx); err != nil {
		out.Err(err.Error())
		return
	}
	out.Tip("Stopped")
}

func InitConfigFile(cmd *cobra.Command) confile.Confiler {
	cfg, err := buildConfig(cmd)
	if err != nil {
		out.Err(fmt.Sprintf("parse config file err: %v", err))
		os.Exit(1)
	}
	if err = applyFlags(cmd, cfg); err != nil {
		out.Err(err.Error())
		os.Exit(1)
	}
	return cfg
}

// loadProfile parses the profile given by -c, else ./conf.yaml. found is
// false when neither exists and cfg holds the defaults.
func loadProfile(cmd *cobra.Command) (cfg *confile.Confile, found bool, err error) {
	cfg = confile.NewConfigFile()
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err = os.Stat(configs.DefaultConfigFile); err != nil {
			return cfg, false, nil
		}
		configFile = configs.DefaultConfigFile
	}
	return cfg, true, cfg.Parse(configFile)
}

// buildConfig reads the given or the default profile. Without either it
// falls back to defaults and asks for the storage api key.
func buildConfig(cmd *cobra.Command) (*confile.Confile, error) {
	cfg, found, err := loadProfile(cmd)
	if found || err != nil {
		return cfg, err
	}
	out.Tip(fmt.Sprintf("No %s found, running with defaults", configs.DefaultConfigFile))
	out.Input("Enter the api key of the document storage service, press Enter to skip:")
	key, err := gopass.GetPasswdMasked()
	if err != nil {
		if err == gopass.ErrInterrupted {
			os.Exit(0)
		}
		out.Warn("Unable to read the api key, document uploads are disabled")
	}
	cfg.SetStorageApiKey(string(key))
	return cfg, cfg.SetWorkspace(cfg.ReadWorkspace())
}

func applyFlags(cmd *cobra.Command, cfg *confile.Confile) error {
	if ws, _ := cmd.Flags().GetString("ws"); ws != "" {
		if err := cfg.SetWorkspace(ws); err != nil {
			return err
		}
	}
	if port, _ := cmd.Flags().GetUint16("port"); port != 0 {
		if err := cfg.SetServicePort(port); err != nil {
			return err
		}
	}
	return nil
}
