/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package runstatus

import (
	"sync"
	"time"

	"github.com/shirou/gopsutil/mem"
)

type Processst interface {
	SetPID(pid int)
	SetCpucores(cores int)
	SetComAddr(addr string)
	SetStartTime(t time.Time)

	GetPID() int
	GetCpucores() int
	GetComAddr() string
	GetStartTime() string
	// GetMemUsage returns used and total system memory in bytes.
	GetMemUsage() (uint64, uint64)
}

type ProcessSt struct {
	lock      *sync.RWMutex
	cpucores  int
	pid       int
	addr      string
	startTime time.Time
}

func NewProcessSt() *ProcessSt {
	return &ProcessSt{
		lock: new(sync.RWMutex),
	}
}

func (p *ProcessSt) SetPID(pid int) {
	p.lock.Lock()
	p.pid = pid
	p.lock.Unlock()
}

func (p *ProcessSt) GetPID() int {
	p.lock.RLock()
	value := p.pid
	p.lock.RUnlock()
	return value
}

func (p *ProcessSt) SetCpucores(cores int) {
	p.lock.Lock()
	p.cpucores = cores
	p.lock.Unlock()
}

func (p *ProcessSt) GetCpucores() int {
	p.lock.RLock()
	value := p.cpucores
	p.lock.RUnlock()
	return value
}

func (p *ProcessSt) SetComAddr(addr string) {
	p.lock.Lock()
	p.addr = addr
	p.lock.Unlock()
}

func (p *ProcessSt) GetComAddr() string {
	p.lock.RLock()
	value := p.addr
	p.lock.RUnlock()
	return value
}

func (p *ProcessSt) SetStartTime(t time.Time) {
	p.lock.Lock()
	p.startTime = t
	p.lock.Unlock()
}

func (p *ProcessSt) GetStartTime() string {
	p.lock.RLock()
	value := p.startTime
	p.lock.RUnlock()
	if value.IsZero() {
		return ""
	}
	return value.Format(time.DateTime)
}

func (p *ProcessSt) GetMemUsage() (uint64, uint64) {
	memSt, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0
	}
	return memSt.Used, memSt.Total
}
