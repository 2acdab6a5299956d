/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

// Package i18n holds the user-facing notification texts.
package i18n

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// message ids
const (
	WalletAbsent        = "WalletAbsent"
	WalletInstall       = "WalletInstall"
	WalletConnectFailed = "WalletConnectFailed"
	WalletConnected     = "WalletConnected"
	WalletDisconnected  = "WalletDisconnected"
	AuthConnectFirst    = "AuthConnectFirst"
	AuthEnterCode       = "AuthEnterCode"
	AuthCodeSent        = "AuthCodeSent"
	AuthRegistered      = "AuthRegistered"
	AuthLoggedIn        = "AuthLoggedIn"
	AuthFailed          = "AuthFailed"
	RequestFailed       = "RequestFailed"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator turns a message id into text.
type Translator interface {
	T(messageID string, data map[string]any) string
}

type Catalog struct {
	lang      string
	localizer *i18n.Localizer
	available []string
}

var _ Translator = (*Catalog)(nil)

// New loads the embedded locales and localizes into lang, falling back to English.
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, errors.Wrap(err, "[ReadDir]")
	}
	available := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "[ReadFile] %s", f.Name())
		}
		if _, err = bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, errors.Wrapf(err, "[ParseMessageFileBytes] %s", f.Name())
		}
		available = append(available, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	sort.Strings(available)

	return &Catalog{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang, language.English.String()),
		available: available,
	}, nil
}

// MustNew is New for the embedded, known-good locales.
func MustNew(lang string) *Catalog {
	c, err := New(lang)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Lang() string {
	return c.lang
}

func (c *Catalog) Available() []string {
	return c.available
}

// T returns the message id itself when no translation exists.
func (c *Catalog) T(messageID string, data map[string]any) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
