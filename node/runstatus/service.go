/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package runstatus

import "sync"

type Servicest interface {
	SetVisitors(n int)
	SetLedgerClients(n int)
	SetStorageReady(ready bool)

	GetVisitors() int
	GetLedgerClients() int
	GetStorageReady() bool
}

type ServiceSt struct {
	lock          *sync.RWMutex
	visitors      int
	ledgerClients int
	storageReady  bool
}

func NewServiceSt() *ServiceSt {
	return &ServiceSt{
		lock: new(sync.RWMutex),
	}
}

func (s *ServiceSt) SetVisitors(n int) {
	s.lock.Lock()
	s.visitors = n
	s.lock.Unlock()
}

func (s *ServiceSt) GetVisitors() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.visitors
}

// SetLedgerClients records how many visitors have an initialized ledger client.
func (s *ServiceSt) SetLedgerClients(n int) {
	s.lock.Lock()
	s.ledgerClients = n
	s.lock.Unlock()
}

func (s *ServiceSt) GetLedgerClients() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.ledgerClients
}

func (s *ServiceSt) SetStorageReady(ready bool) {
	s.lock.Lock()
	s.storageReady = ready
	s.lock.Unlock()
}

func (s *ServiceSt) GetStorageReady() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.storageReady
}
