/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package configs

import (
	"io/fs"
	"time"
)

const (
	// Default config file
	DefaultConfigFile = "conf.yaml"
	// Default workspace
	DefaultWorkspace = "./ecertify"
	// Default listening port
	DefaultServicePort = 8080
	// Default language of user notifications
	DefaultLanguage = "en"
	// Default ipfs gateway used for shareable links
	DefaultGateway = "ipfs.dweb.link"
	// Where users get the wallet extension
	DefaultWalletInstallURL = "https://metamask.io/download.html"
)

const (
	DirMode  fs.FileMode = 0755
	FileMode fs.FileMode = 0644
)

const (
	DbDir  = "db"
	LogDir = "log"
)

const (
	// RoleStorageKey is the key under which the chosen role is persisted
	RoleStorageKey = "e-certify-user-type"
	// VisitorCookie identifies a browser across requests
	VisitorCookie = "ecertify-visitor"
	// VisitorCookieMaxAge is one year, in seconds
	VisitorCookieMaxAge = 365 * 24 * 3600
)

const (
	// the time the web server is given to drain on shutdown
	ShutdownTimeout = 10 * time.Second
	// display time of the "wallet absent" notification
	InstallNoticeDuration = 5 * time.Second
	// maximum size of an uploaded certificate document
	MaxDocumentSize = 32 << 20
	// visits without a request for this long are released
	VisitorIdleTimeout = 24 * time.Hour
	// how often idle visits are looked for
	SweepInterval = 10 * time.Minute
)
