/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"github.com/ecertify/ecertify/node/docstore"
	"github.com/ecertify/ecertify/node/runstatus"
	"github.com/ecertify/ecertify/pkg/i18n"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	*PageHandler
	*SessionHandler
	*CertificateHandler
	*DocumentHandler
	*StatusHandler
}

func NewHandler(reg *Registry, store docstore.Store, rs runstatus.Runstatus, translator i18n.Translator, log logger.Logger, installURL string) *Handler {
	return &Handler{
		PageHandler:        NewPageHandler(reg, installURL),
		SessionHandler:     NewSessionHandler(reg, translator, log),
		CertificateHandler: NewCertificateHandler(reg, log),
		DocumentHandler:    NewDocumentHandler(reg, store, log),
		StatusHandler:      NewStatusHandler(rs, reg, store),
	}
}

func (h *Handler) RegisterRoutes(server *gin.Engine) {
	h.PageHandler.RegisterRoutes(server)
	h.SessionHandler.RegisterRoutes(server)
	h.CertificateHandler.RegisterRoutes(server)
	h.DocumentHandler.RegisterRoutes(server)
	h.StatusHandler.RegisterRoutes(server)
}
