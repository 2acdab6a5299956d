/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecertify/ecertify/node/common"
	"github.com/ecertify/ecertify/node/guard"
	"github.com/ecertify/ecertify/node/ledger"
	"github.com/ecertify/ecertify/node/session"
	"github.com/ecertify/ecertify/node/wallet"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type CertificateHandler struct {
	reg *Registry
	log logger.Logger
}

func NewCertificateHandler(reg *Registry, log logger.Logger) *CertificateHandler {
	return &CertificateHandler{reg: reg, log: log}
}

func (h *CertificateHandler) RegisterRoutes(server *gin.Engine) {
	certgroup := server.Group("/api/certificates")
	certgroup.POST("", guard.API(session.RoleInstitute, h.reg), h.issue)
	certgroup.GET("/:id", guard.API(session.RoleNone, h.reg), h.get)
	certgroup.GET("/:id/verify", guard.API(session.RoleNone, h.reg), h.verify)
	certgroup.DELETE("/:id", guard.API(session.RoleInstitute, h.reg), h.revoke)
}

type issueReq struct {
	StudentAddress string `json:"studentAddress"`
	DocumentHash   string `json:"documentHash"`
	Metadata       string `json:"metadata"`
}

func (h *CertificateHandler) issue(c *gin.Context) {
	var req issueReq
	if err := c.ShouldBindJSON(&req); err != nil || req.DocumentHash == "" {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidBody, nil)
		return
	}
	student, err := wallet.NormalizeAddress(req.StudentAddress)
	if err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidAddress, nil)
		return
	}
	id, err := h.reg.Visit(c).SignedLedger().IssueCertificate(c.Request.Context(), student, req.DocumentHash, req.Metadata)
	if err != nil {
		h.fail(c, "issue", err)
		return
	}
	common.ReturnJSON(c, http.StatusOK, common.OK, gin.H{"id": id})
}

func (h *CertificateHandler) get(c *gin.Context) {
	id, ok := certificateID(c)
	if !ok {
		return
	}
	cert, err := h.reg.Visit(c).SignedLedger().GetCertificate(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	common.ReturnJSON(c, http.StatusOK, common.OK, cert)
}

func (h *CertificateHandler) verify(c *gin.Context) {
	id, ok := certificateID(c)
	if !ok {
		return
	}
	valid, err := h.reg.Visit(c).SignedLedger().VerifyCertificate(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "verify", err)
		return
	}
	common.ReturnJSON(c, http.StatusOK, common.OK, gin.H{"id": id, "valid": valid})
}

func (h *CertificateHandler) revoke(c *gin.Context) {
	id, ok := certificateID(c)
	if !ok {
		return
	}
	revoked, err := h.reg.Visit(c).SignedLedger().RevokeCertificate(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "revoke", err)
		return
	}
	common.ReturnJSON(c, http.StatusOK, common.OK, gin.H{"id": id, "revoked": revoked})
}

func (h *CertificateHandler) fail(c *gin.Context, op string, err error) {
	h.log.Ledger("err", fmt.Sprintf("%s: %v", op, err))
	if errors.Is(err, ledger.ErrUninitialized) {
		common.ReturnJSON(c, http.StatusServiceUnavailable, common.ERR_ClientUnavailable, nil)
		return
	}
	common.ReturnJSON(c, http.StatusInternalServerError, common.ERR_SystemErr, nil)
}

func certificateID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(common.Param_ID), 10, 64)
	if err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidID, nil)
		return 0, false
	}
	return id, true
}
