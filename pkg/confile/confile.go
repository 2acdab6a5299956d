/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package confile

import (
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/ecertify/ecertify/configs"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const DefaultProfile = configs.DefaultConfigFile
const TempleteProfile = `app:
  # workspace, holds the database and the logs
  workspace: "./ecertify"
  # communication port
  port: 8080
  # origins allowed to call the api, empty means same origin only
  origins: []
  # language of user notifications: en, de
  lang: "en"

storage:
  # api key of the document storage service, leave empty to disable uploads
  apikey: ""
  # gateway domain used to build shareable links
  gateway: "ipfs.dweb.link"

wallet:
  # where users are sent to install the wallet extension
  installurl: "https://metamask.io/download.html"`

type Confiler interface {
	Parse(fpath string) error
	ReadWorkspace() string
	ReadServicePort() uint16
	ReadAllowedOrigins() []string
	ReadLanguage() string
	ReadStorageApiKey() string
	ReadStorageGateway() string
	ReadWalletInstallURL() string
}

type App struct {
	Workspace string   `name:"workspace" toml:"workspace" yaml:"workspace"`
	Port      uint16   `name:"port" toml:"port" yaml:"port"`
	Origins   []string `name:"origins" toml:"origins" yaml:"origins"`
	Lang      string   `name:"lang" toml:"lang" yaml:"lang"`
}

type Storage struct {
	ApiKey  string `name:"apikey" toml:"apikey" yaml:"apikey"`
	Gateway string `name:"gateway" toml:"gateway" yaml:"gateway"`
}

type Wallet struct {
	InstallURL string `name:"installurl" toml:"installurl" yaml:"installurl"`
}

type Confile struct {
	App     `yaml:"app"`
	Storage `yaml:"storage"`
	Wallet  `yaml:"wallet"`
}

var _ Confiler = (*Confile)(nil)

func NewConfigFile() *Confile {
	return &Confile{
		App: App{
			Workspace: configs.DefaultWorkspace,
			Port:      configs.DefaultServicePort,
			Lang:      configs.DefaultLanguage,
		},
		Storage: Storage{Gateway: configs.DefaultGateway},
		Wallet:  Wallet{InstallURL: configs.DefaultWalletInstallURL},
	}
}

func (c *Confile) Parse(fpath string) error {
	fstat, err := os.Stat(fpath)
	if err != nil {
		return err
	}
	if fstat.IsDir() {
		return errors.Errorf("The '%v' is not a file", fpath)
	}

	v := viper.New()
	v.SetConfigFile(fpath)
	v.SetConfigType(path.Ext(fpath)[1:])

	err = v.ReadInConfig()
	if err != nil {
		return errors.Errorf("[ReadInConfig] %v", err)
	}
	err = v.Unmarshal(c)
	if err != nil {
		return errors.Errorf("[Unmarshal] %v", err)
	}

	if c.Port < 1024 {
		return errors.Errorf("prohibit the use of system reserved port: %v", c.Port)
	}

	if c.Lang == "" {
		c.Lang = configs.DefaultLanguage
	}

	c.Gateway = strings.Trim(strings.TrimPrefix(c.Gateway, "https://"), "/")
	if c.Gateway == "" {
		c.Gateway = configs.DefaultGateway
	}

	if c.InstallURL == "" {
		c.InstallURL = configs.DefaultWalletInstallURL
	}
	if _, err = url.ParseRequestURI(c.InstallURL); err != nil {
		return errors.Errorf("invalid wallet install url: %v", err)
	}

	return c.SetWorkspace(c.Workspace)
}

func (c *Confile) SetServicePort(port uint16) error {
	if port < 1024 {
		return errors.Errorf("Prohibit the use of system reserved port: %v", port)
	}
	c.Port = port
	return nil
}

func (c *Confile) SetWorkspace(workspace string) error {
	if workspace == "" {
		return errors.New("'workspace' can not be empty")
	}
	fstat, err := os.Stat(workspace)
	if err != nil {
		err = os.MkdirAll(workspace, configs.DirMode)
		if err != nil {
			return err
		}
	} else if !fstat.IsDir() {
		return errors.Errorf("the '%v' is not a directory", workspace)
	}
	c.Workspace = workspace
	return nil
}

func (c *Confile) SetStorageApiKey(key string) {
	c.ApiKey = strings.TrimSpace(key)
}

func (c *Confile) SetAllowedOrigins(origins []string) {
	c.Origins = origins
}

/////////////////////////////////////////////

func (c *Confile) ReadWorkspace() string {
	return c.Workspace
}

func (c *Confile) ReadServicePort() uint16 {
	return c.Port
}

func (c *Confile) ReadAllowedOrigins() []string {
	return c.Origins
}

func (c *Confile) ReadLanguage() string {
	return c.Lang
}

func (c *Confile) ReadStorageApiKey() string {
	return c.ApiKey
}

func (c *Confile) ReadStorageGateway() string {
	return c.Gateway
}

func (c *Confile) ReadWalletInstallURL() string {
	return c.InstallURL
}
