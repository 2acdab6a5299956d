/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"net/http"

	"github.com/ecertify/ecertify/node/common"
	"github.com/ecertify/ecertify/node/docstore"
	"github.com/ecertify/ecertify/node/runstatus"
	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	runstatus.Runstatus
	reg   *Registry
	store docstore.Store
}

func NewStatusHandler(rs runstatus.Runstatus, reg *Registry, store docstore.Store) *StatusHandler {
	return &StatusHandler{Runstatus: rs, reg: reg, store: store}
}

func (s *StatusHandler) RegisterRoutes(server *gin.Engine) {
	statusgroup := server.Group("/status")
	statusgroup.GET("", s.getStatus)
}

type StatusData struct {
	PID       int    `json:"pid"`
	Cores     int    `json:"cores"`
	Addr      string `json:"addr"`
	StartTime string `json:"start_time"`

	MemUsed  uint64 `json:"mem_used"`
	MemTotal uint64 `json:"mem_total"`

	Visitors      int  `json:"visitors"`
	LedgerClients int  `json:"ledger_clients"`
	StorageReady  bool `json:"storage_ready"`
}

func (s *StatusHandler) getStatus(c *gin.Context) {
	s.SetVisitors(s.reg.Len())
	s.SetLedgerClients(s.reg.LedgerClients())
	s.SetStorageReady(s.store.IsInitialized())

	used, total := s.GetMemUsage()
	var data = StatusData{
		PID:       s.GetPID(),
		Cores:     s.GetCpucores(),
		Addr:      s.GetComAddr(),
		StartTime: s.GetStartTime(),

		MemUsed:  used,
		MemTotal: total,

		Visitors:      s.GetVisitors(),
		LedgerClients: s.GetLedgerClients(),
		StorageReady:  s.GetStorageReady(),
	}

	common.ReturnJSON(c, http.StatusOK, common.OK, data)
}
