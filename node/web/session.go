/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ecertify/ecertify/node/common"
	"github.com/ecertify/ecertify/node/guard"
	"github.com/ecertify/ecertify/node/session"
	"github.com/ecertify/ecertify/node/wallet"
	"github.com/ecertify/ecertify/pkg/i18n"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type SessionHandler struct {
	reg        *Registry
	translator i18n.Translator
	log        logger.Logger
}

func NewSessionHandler(reg *Registry, translator i18n.Translator, log logger.Logger) *SessionHandler {
	return &SessionHandler{reg: reg, translator: translator, log: log}
}

func (s *SessionHandler) RegisterRoutes(server *gin.Engine) {
	api := server.Group("/api")
	api.GET("/session", s.getSession)
	api.GET("/notifications", s.getNotifications)

	walletgroup := api.Group("/wallet")
	walletgroup.POST("/probe", s.probe)
	walletgroup.POST("/accounts", s.accountsChanged)

	sessiongroup := api.Group("/session")
	sessiongroup.POST("/connect", s.connect)
	sessiongroup.POST("/role", s.selectRole)
	sessiongroup.POST("/disconnect", s.disconnect)

	authgroup := api.Group("/auth")
	authgroup.POST("/otp", s.sendOtp)
	authgroup.POST("/authenticate", s.authenticate)
}

type SessionView struct {
	Connected     bool                   `json:"connected"`
	Authenticated bool                   `json:"authenticated"`
	Role          string                 `json:"role"`
	Address       string                 `json:"address"`
	ShortAddress  string                 `json:"shortAddress"`
	Dashboard     string                 `json:"dashboard,omitempty"`
	Redirect      string                 `json:"redirect,omitempty"`
	Notifications []session.Notification `json:"notifications"`
}

func viewOf(v *Visit) SessionView {
	snap := v.Holder.Snapshot()
	view := SessionView{
		Connected:     snap.Connected,
		Authenticated: snap.Authenticated(),
		Role:          string(snap.Role),
		Address:       snap.Address,
		ShortAddress:  wallet.ShortAddress(snap.Address),
		Notifications: v.Queue.Drain(),
	}
	if view.Authenticated {
		view.Dashboard = guard.DashboardPath(snap.Role)
	}
	return view
}

type accountsReq struct {
	Accounts []string `json:"accounts"`
}

type connectReq struct {
	Present  bool     `json:"present"`
	Accounts []string `json:"accounts"`
	Rejected bool     `json:"rejected"`
}

type roleReq struct {
	Role string `json:"role"`
}

type authReq struct {
	Role string `json:"role"`
	Code string `json:"code"`
	// Register selects the registration wording of the confirmation.
	Register bool `json:"register"`
}

func (s *SessionHandler) getSession(c *gin.Context) {
	common.ReturnJSON(c, http.StatusOK, common.OK, viewOf(s.reg.Visit(c)))
}

func (s *SessionHandler) getNotifications(c *gin.Context) {
	common.ReturnJSON(c, http.StatusOK, common.OK, s.reg.Visit(c).Queue.Drain())
}

func (s *SessionHandler) probe(c *gin.Context) {
	var report wallet.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidBody, nil)
		return
	}
	v := s.reg.Visit(c)
	v.Bridge.Announce(report)
	// failures are in the session log, the visitor just stays signed out
	_ = v.Holder.Probe(c.Request.Context())
	common.ReturnJSON(c, http.StatusOK, common.OK, viewOf(v))
}

func (s *SessionHandler) accountsChanged(c *gin.Context) {
	var req accountsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidBody, nil)
		return
	}
	v := s.reg.Visit(c)
	v.Bridge.PublishAccounts(req.Accounts)
	common.ReturnJSON(c, http.StatusOK, common.OK, viewOf(v))
}

func (s *SessionHandler) connect(c *gin.Context) {
	var req connectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidBody, nil)
		return
	}
	v := s.reg.Visit(c)
	if req.Present {
		v.Bridge.StageAccounts(req.Accounts, req.Rejected)
	} else {
		v.Bridge.Announce(wallet.Report{})
	}

	err := v.Holder.Connect(c.Request.Context())
	switch {
	case err == nil:
		common.ReturnJSON(c, http.StatusOK, common.OK, viewOf(v))
	case errors.Is(err, session.ErrWalletAbsent):
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_WalletAbsent, viewOf(v))
	default:
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_WalletRejected, viewOf(v))
	}
}

func (s *SessionHandler) selectRole(c *gin.Context) {
	var req roleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidBody, nil)
		return
	}
	role, err := session.ParseRole(req.Role)
	if err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidRole, nil)
		return
	}
	v := s.reg.Visit(c)
	if err = v.Holder.SelectRole(role); err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_NotConnected, viewOf(v))
		return
	}
	common.ReturnJSON(c, http.StatusOK, common.OK, viewOf(v))
}

func (s *SessionHandler) disconnect(c *gin.Context) {
	v := s.reg.Visit(c)
	v.Holder.Disconnect()
	common.ReturnJSON(c, http.StatusOK, common.OK, viewOf(v))
}

// sendOtp only acknowledges, no code is delivered anywhere.
func (s *SessionHandler) sendOtp(c *gin.Context) {
	v := s.reg.Visit(c)
	if v.Holder.Snapshot().Address == "" {
		s.notify(v, session.LevelError, i18n.AuthConnectFirst, nil)
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_NotConnected, viewOf(v))
		return
	}
	s.notify(v, session.LevelInfo, i18n.AuthCodeSent, nil)
	common.ReturnJSON(c, http.StatusOK, common.OK, viewOf(v))
}

// authenticate accepts any non-empty code for a connected wallet.
func (s *SessionHandler) authenticate(c *gin.Context) {
	var req authReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidBody, nil)
		return
	}
	v := s.reg.Visit(c)
	if v.Holder.Snapshot().Address == "" {
		s.notify(v, session.LevelError, i18n.AuthConnectFirst, nil)
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_NotConnected, viewOf(v))
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		s.notify(v, session.LevelError, i18n.AuthEnterCode, nil)
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_EmptyCode, viewOf(v))
		return
	}
	role, err := session.ParseRole(req.Role)
	if err != nil {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_InvalidRole, nil)
		return
	}
	if err = v.Holder.SelectRole(role); err != nil {
		s.log.Session("err", fmt.Sprintf("authenticate %s: %v", v.ID, err))
		s.notify(v, session.LevelError, i18n.AuthFailed, nil)
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_NotConnected, viewOf(v))
		return
	}

	msgID := i18n.AuthLoggedIn
	if req.Register {
		msgID = i18n.AuthRegistered
	}
	s.notify(v, session.LevelSuccess, msgID, map[string]any{"Role": string(role)})

	view := viewOf(v)
	view.Redirect = v.Holder.TakeReturnPath()
	if view.Redirect == "" {
		view.Redirect = guard.DashboardPath(role)
	}
	common.ReturnJSON(c, http.StatusOK, common.OK, view)
}

func (s *SessionHandler) notify(v *Visit, level session.Level, msgID string, data map[string]any) {
	v.Queue.Notify(session.Notification{
		Level:   level,
		Message: s.translator.T(msgID, data),
	})
}
