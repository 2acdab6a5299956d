/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"context"
	"sync"
)

// Report is what the page script reads from window.ethereum on load.
type Report struct {
	Present         bool   `json:"present"`
	IsMetaMask      bool   `json:"isMetaMask"`
	SelectedAddress string `json:"selectedAddress"`
}

// Bridge is a Provider fed by the page script. The browser performs the
// user-gesture-gated calls and relays their outcome; the bridge replays it
// to the session holder.
type Bridge struct {
	lock     sync.Mutex
	report   Report
	staged   []string
	rejected bool
	handlers map[uint64]func([]string)
	nextID   uint64
}

var _ Provider = (*Bridge)(nil)

func NewBridge() *Bridge {
	return &Bridge{handlers: make(map[uint64]func([]string))}
}

// Announce records the extension state seen by the page.
func (b *Bridge) Announce(r Report) {
	b.lock.Lock()
	b.report = r
	b.lock.Unlock()
}

// StageAccounts records the result of the browser's account request for
// the next RequestAccounts call. Only a page that found an extension asks
// for accounts, so staging marks the extension present.
func (b *Bridge) StageAccounts(accounts []string, rejected bool) {
	b.lock.Lock()
	b.staged = append([]string(nil), accounts...)
	b.rejected = rejected
	b.report.Present = true
	b.lock.Unlock()
}

// PublishAccounts delivers an accountsChanged event. Handlers run on the
// caller's goroutine without the bridge lock held.
func (b *Bridge) PublishAccounts(accounts []string) {
	b.lock.Lock()
	b.staged = append([]string(nil), accounts...)
	b.rejected = false
	b.report.SelectedAddress = ""
	if len(accounts) > 0 {
		b.report.SelectedAddress = accounts[0]
	}
	handlers := make([]func([]string), 0, len(b.handlers))
	for _, fn := range b.handlers {
		handlers = append(handlers, fn)
	}
	b.lock.Unlock()

	for _, fn := range handlers {
		fn(append([]string(nil), accounts...))
	}
}

func (b *Bridge) Present() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.report.Present
}

func (b *Bridge) IsMetaMask() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.report.IsMetaMask
}

func (b *Bridge) SelectedAddress() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.report.SelectedAddress
}

func (b *Bridge) RequestAccounts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	if !b.report.Present {
		return nil, ErrAbsent
	}
	if b.rejected || len(b.staged) == 0 {
		return nil, ErrRejected
	}
	b.report.SelectedAddress = b.staged[0]
	return append([]string(nil), b.staged...), nil
}

func (b *Bridge) OnAccountsChanged(fn func(accounts []string)) Subscription {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers[id] = fn
	return &subscription{bridge: b, id: id}
}

// Listeners reports the number of live subscriptions.
func (b *Bridge) Listeners() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.handlers)
}

type subscription struct {
	once   sync.Once
	bridge *Bridge
	id     uint64
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bridge.lock.Lock()
		delete(s.bridge.handlers, s.id)
		s.bridge.lock.Unlock()
	})
}
