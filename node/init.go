/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package node

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/node/docstore"
	"github.com/ecertify/ecertify/node/runstatus"
	"github.com/ecertify/ecertify/node/web"
	"github.com/ecertify/ecertify/node/workspace"
	"github.com/ecertify/ecertify/pkg/cache"
	"github.com/ecertify/ecertify/pkg/i18n"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// InitNode builds everything Start needs. Any failure leaves the node unusable.
func (n *Node) InitNode() (*Node, error) {
	if err := n.InitWorkspace(); err != nil {
		return nil, err
	}
	if err := n.InitLogs(); err != nil {
		return nil, err
	}
	if err := n.InitCache(); err != nil {
		return nil, err
	}
	if err := n.InitTranslator(); err != nil {
		return nil, err
	}
	n.InitDocumentStore()
	n.InitRunStatus()
	n.registry = web.NewRegistry(n.roles, n.Logger, n.translator, n.ReadWalletInstallURL())
	n.InitWebServer(
		InitMiddlewares(n.ReadAllowedOrigins(), n.Logger),
		web.NewHandler(n.registry, n.store, n.Runstatus, n.translator, n.Logger, n.ReadWalletInstallURL()),
	)
	return n, nil
}

func (n *Node) InitWorkspace() error {
	n.Workspace = workspace.NewWorkspace(n.ReadWorkspace())
	if err := n.Build(); err != nil {
		return errors.Wrap(err, "[Build workspace]")
	}
	return nil
}

func (n *Node) InitLogs() error {
	lg, err := logger.NewWorkspaceLogs(n.GetLogDir())
	if err != nil {
		return errors.Wrap(err, "[NewWorkspaceLogs]")
	}
	n.Logger = lg
	if warn, err := n.Check(); err != nil {
		n.Log("err", err.Error())
	} else if warn != "" {
		n.Log("warn", warn)
	}
	return nil
}

func (n *Node) InitCache() error {
	db, err := cache.NewCache(n.GetDbDir(), configs.NameSpace)
	if err != nil {
		return errors.Wrap(err, "[NewCache]")
	}
	n.roles = db
	return nil
}

func (n *Node) InitTranslator() error {
	tr, err := i18n.New(n.ReadLanguage())
	if err != nil {
		return errors.Wrap(err, "[i18n.New]")
	}
	n.translator = tr
	return nil
}

// InitDocumentStore leaves the store uninitialized without an api key.
func (n *Node) InitDocumentStore() {
	store := docstore.NewMock(n.ReadStorageGateway(), n.Logger)
	if store.Initialize(n.ReadStorageApiKey()) {
		n.Storage("info", "document store initialized")
	} else {
		n.Storage("warn", "no api key configured, document uploads are disabled")
	}
	n.store = store
}

func (n *Node) InitRunStatus() {
	rt := runstatus.NewRunstatus()
	rt.SetPID(os.Getpid())
	rt.SetCpucores(runtime.NumCPU())
	rt.SetComAddr(fmt.Sprintf(":%d", n.ReadServicePort()))
	rt.SetStartTime(time.Now())
	rt.SetStorageReady(n.store != nil && n.store.IsInitialized())
	n.Runstatus = rt
}

func (n *Node) InitWebServer(mdls []gin.HandlerFunc, hdl *web.Handler) {
	gin.SetMode(gin.ReleaseMode)
	n.Engine = gin.New()
	n.Engine.Use(mdls...)
	hdl.RegisterRoutes(n.Engine)
}

// InitMiddlewares enables cors only for configured origins, the pages
// themselves are same-origin.
func InitMiddlewares(origins []string, log logger.Logger) []gin.HandlerFunc {
	mdls := []gin.HandlerFunc{
		web.Recovery(log),
		web.AccessLog(log),
	}
	if len(origins) > 0 {
		mdls = append(mdls, cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowCredentials: true,
			AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			MaxAge:           12 * time.Hour,
		}))
	}
	return mdls
}
