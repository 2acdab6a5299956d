/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/node/ledger"
	"github.com/ecertify/ecertify/node/session"
	"github.com/ecertify/ecertify/node/wallet"
	"github.com/ecertify/ecertify/pkg/cache"
	"github.com/ecertify/ecertify/pkg/i18n"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const visitKey = "ecertify.visit"

// Visit is everything the gateway keeps for one browser.
type Visit struct {
	ID     string
	Bridge *wallet.Bridge
	Queue  *session.Queue
	Holder *session.Holder
	Ledger ledger.Ledger

	lock     sync.Mutex
	lastSeen time.Time
	// address the ledger client signs with, empty while uninitialized
	signer string
}

func (v *Visit) touch(now time.Time) {
	v.lock.Lock()
	v.lastSeen = now
	v.lock.Unlock()
}

func (v *Visit) idleSince() time.Time {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.lastSeen
}

// SignedLedger returns the visit's ledger client signing with the account
// currently connected. A switched account re-initializes the client, a
// disconnected session leaves it uninitialized.
func (v *Visit) SignedLedger() ledger.Ledger {
	addr := v.Holder.Snapshot().Address
	v.lock.Lock()
	defer v.lock.Unlock()
	if addr != v.signer {
		if addr == "" {
			v.Ledger.Initialize(nil)
		} else {
			v.Ledger.Initialize(ledger.AddressSigner(addr))
		}
		v.signer = addr
	}
	return v.Ledger
}

// Registry maps the visitor cookie to its Visit. Visits are opened by the
// handlers that need session state, never for static files or /status.
type Registry struct {
	lock   sync.RWMutex
	visits map[string]*Visit

	roles      cache.Cache
	log        logger.Logger
	translator i18n.Translator
	installURL string
	now        func() time.Time
}

func NewRegistry(roles cache.Cache, log logger.Logger, translator i18n.Translator, installURL string) *Registry {
	return &Registry{
		visits:     make(map[string]*Visit),
		roles:      roles,
		log:        log,
		translator: translator,
		installURL: installURL,
		now:        time.Now,
	}
}

func (r *Registry) open(id string) *Visit {
	r.lock.RLock()
	v, ok := r.visits[id]
	r.lock.RUnlock()
	if ok {
		v.touch(r.now())
		return v
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if v, ok = r.visits[id]; ok {
		v.touch(r.now())
		return v
	}
	bridge := wallet.NewBridge()
	queue := session.NewQueue()
	holder := session.NewHolder(bridge, session.NewCacheRoleStore(r.roles, id), queue, session.Options{
		Translator: r.translator,
		Logger:     r.log,
		InstallURL: r.installURL,
	})
	holder.Mount()
	v = &Visit{
		ID:       id,
		Bridge:   bridge,
		Queue:    queue,
		Holder:   holder,
		Ledger:   ledger.NewMock(r.log),
		lastSeen: r.now(),
	}
	r.visits[id] = v
	r.log.Session("info", fmt.Sprintf("new visitor %s", id))
	return v
}

// lookup finds the visit of the request without opening one. The id is
// the valid cookie value, if any.
func (r *Registry) lookup(c *gin.Context) (*Visit, string) {
	if v, ok := c.Get(visitKey); ok {
		return v.(*Visit), v.(*Visit).ID
	}
	raw, err := c.Cookie(configs.VisitorCookie)
	if err != nil {
		return nil, ""
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, ""
	}
	id := parsed.String()
	r.lock.RLock()
	v, ok := r.visits[id]
	r.lock.RUnlock()
	if !ok {
		return nil, id
	}
	v.touch(r.now())
	c.Set(visitKey, v)
	return v, id
}

// Peek returns the visit of the request, nil for a browser without a live
// visit.
func (r *Registry) Peek(c *gin.Context) *Visit {
	v, _ := r.lookup(c)
	return v
}

// Visit returns the visit of the request. A browser without a live visit
// gets one, and the cookie is (re)issued.
func (r *Registry) Visit(c *gin.Context) *Visit {
	v, id := r.lookup(c)
	if v != nil {
		return v
	}
	if id == "" {
		id = uuid.New().String()
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(configs.VisitorCookie, id, configs.VisitorCookieMaxAge, "/", "", false, true)
	v = r.open(id)
	c.Set(visitKey, v)
	return v
}

func (r *Registry) Holder(c *gin.Context) *session.Holder {
	return r.Visit(c).Holder
}

// Release forgets a visit. Its persisted role survives.
func (r *Registry) Release(id string) {
	r.lock.Lock()
	v, ok := r.visits[id]
	delete(r.visits, id)
	r.lock.Unlock()
	if ok {
		v.Holder.Unmount()
	}
}

// Sweep releases visits idle for longer than maxIdle and returns how many.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	deadline := r.now().Add(-maxIdle)
	var stale []string
	r.lock.RLock()
	for id, v := range r.visits {
		if v.idleSince().Before(deadline) {
			stale = append(stale, id)
		}
	}
	r.lock.RUnlock()
	for _, id := range stale {
		r.Release(id)
	}
	return len(stale)
}

func (r *Registry) Close() {
	r.lock.Lock()
	visits := r.visits
	r.visits = make(map[string]*Visit)
	r.lock.Unlock()
	for _, v := range visits {
		v.Holder.Unmount()
	}
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.visits)
}

// LedgerClients counts visits whose ledger client signs for a connected
// account.
func (r *Registry) LedgerClients() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	n := 0
	for _, v := range r.visits {
		if v.SignedLedger().IsInitialized() {
			n++
		}
	}
	return n
}
