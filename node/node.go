/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package node

import (
	"github.com/ecertify/ecertify/node/docstore"
	"github.com/ecertify/ecertify/node/runstatus"
	"github.com/ecertify/ecertify/node/web"
	"github.com/ecertify/ecertify/node/workspace"
	"github.com/ecertify/ecertify/pkg/cache"
	"github.com/ecertify/ecertify/pkg/confile"
	"github.com/ecertify/ecertify/pkg/i18n"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-gonic/gin"
)

type Node struct {
	confile.Confiler
	logger.Logger
	workspace.Workspace
	runstatus.Runstatus
	*gin.Engine

	roles      cache.Cache
	translator *i18n.Catalog
	store      docstore.Store
	registry   *web.Registry
}

func NewNodeWithConfig(cfg confile.Confiler) *Node {
	return &Node{Confiler: cfg}
}

// Registry is nil before InitNode.
func (n *Node) Registry() *web.Registry {
	return n.registry
}

func (n *Node) Store() docstore.Store {
	return n.store
}
