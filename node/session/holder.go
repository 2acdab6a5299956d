/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/node/wallet"
	"github.com/ecertify/ecertify/pkg/i18n"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/pkg/errors"
)

// Holder owns the session of one visitor. Its lock is never held while
// waiting on the wallet provider.
type Holder struct {
	lock       sync.RWMutex
	state      Session
	returnPath string
	sub        wallet.Subscription

	provider   wallet.Provider
	roles      RoleStore
	notifier   Notifier
	translator i18n.Translator
	log        logger.Logger
	installURL string
}

type Options struct {
	Translator i18n.Translator
	Logger     logger.Logger
	// InstallURL is offered when no wallet extension is present.
	InstallURL string
}

func NewHolder(provider wallet.Provider, roles RoleStore, notifier Notifier, opts Options) *Holder {
	h := &Holder{
		provider:   provider,
		roles:      roles,
		notifier:   notifier,
		translator: opts.Translator,
		log:        opts.Logger,
		installURL: opts.InstallURL,
	}
	if h.translator == nil {
		h.translator = i18n.MustNew(configs.DefaultLanguage)
	}
	if h.log == nil {
		h.log = logger.Discard()
	}
	if h.installURL == "" {
		h.installURL = configs.DefaultWalletInstallURL
	}
	return h
}

func (h *Holder) Snapshot() Session {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.state
}

// Probe restores a session the wallet already authorized, without a user
// gesture and without notifications.
func (h *Holder) Probe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !h.provider.Present() || !h.provider.IsMetaMask() {
		return nil
	}
	selected := h.provider.SelectedAddress()
	if selected == "" {
		return nil
	}
	addr, err := wallet.NormalizeAddress(selected)
	if err != nil {
		h.log.Session("err", fmt.Sprintf("probe: %v", err))
		return err
	}

	role, ok, err := h.roles.Load()

	h.lock.Lock()
	h.state.Connected = true
	h.state.Address = addr
	if err == nil && ok {
		h.state.Role = role
	}
	h.lock.Unlock()

	if err != nil {
		h.log.Session("err", fmt.Sprintf("probe %s: load role: %v", addr, err))
		return err
	}
	h.log.Session("info", fmt.Sprintf("probe %s role=%s", addr, role))
	return nil
}

// Connect asks the wallet for account access and adopts the first account.
func (h *Holder) Connect(ctx context.Context) error {
	if !h.provider.Present() {
		h.notifier.Notify(Notification{
			Level:   LevelError,
			Message: h.translator.T(i18n.WalletAbsent, nil),
			Action: &Action{
				Label: h.translator.T(i18n.WalletInstall, nil),
				URL:   h.installURL,
			},
			Duration: configs.InstallNoticeDuration,
		})
		return ErrWalletAbsent
	}

	accounts, err := h.provider.RequestAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = errors.New("no accounts returned")
	}
	var addr string
	if err == nil {
		addr, err = wallet.NormalizeAddress(accounts[0])
	}
	if err != nil {
		h.log.Session("err", fmt.Sprintf("connect: %v", err))
		h.notifier.Notify(Notification{
			Level:   LevelError,
			Message: h.translator.T(i18n.WalletConnectFailed, nil),
		})
		return errors.Wrapf(ErrWalletRejected, "%v", err)
	}

	role, ok, err := h.roles.Load()
	if err != nil {
		h.log.Session("err", fmt.Sprintf("connect %s: load role: %v", addr, err))
	}

	h.lock.Lock()
	h.state.Connected = true
	h.state.Address = addr
	if ok {
		h.state.Role = role
	}
	h.lock.Unlock()

	h.log.Session("info", fmt.Sprintf("connect %s role=%s", addr, role))
	if ok {
		h.notifier.Notify(Notification{
			Level:   LevelSuccess,
			Message: h.translator.T(i18n.WalletConnected, nil),
		})
	}
	return nil
}

// SelectRole sets and persists the role of a connected session.
func (h *Holder) SelectRole(r Role) error {
	if !r.Valid() {
		return errors.Wrapf(ErrInvalidRole, "%q", string(r))
	}
	h.lock.Lock()
	defer h.lock.Unlock()
	if !h.state.Connected {
		return ErrNotConnected
	}
	h.state.Role = r
	if err := h.roles.Save(r); err != nil {
		h.log.Session("err", fmt.Sprintf("select role %s: %v", r, err))
	}
	h.log.Session("info", fmt.Sprintf("%s selected role %s", h.state.Address, r))
	return nil
}

// Disconnect always leaves the empty session behind.
func (h *Holder) Disconnect() {
	h.lock.Lock()
	addr := h.state.Address
	h.state = Session{}
	h.lock.Unlock()

	if err := h.roles.Remove(); err != nil {
		h.log.Session("err", fmt.Sprintf("disconnect %s: remove role: %v", addr, err))
	}
	h.log.Session("info", fmt.Sprintf("disconnect %s", addr))
	h.notifier.Notify(Notification{
		Level:   LevelInfo,
		Message: h.translator.T(i18n.WalletDisconnected, nil),
	})
}

// Mount starts reacting to account changes. Calling it twice keeps one
// subscription.
func (h *Holder) Mount() {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.sub != nil {
		return
	}
	h.sub = h.provider.OnAccountsChanged(h.accountsChanged)
}

// Unmount releases the account change subscription.
func (h *Holder) Unmount() {
	h.lock.Lock()
	sub := h.sub
	h.sub = nil
	h.lock.Unlock()
	if sub != nil {
		sub.Unsubscribe()
	}
}

func (h *Holder) accountsChanged(accounts []string) {
	if len(accounts) == 0 {
		h.Disconnect()
		return
	}
	if err := h.Connect(context.Background()); err != nil {
		h.log.Session("err", fmt.Sprintf("accounts changed: %v", err))
	}
}

// RememberPath keeps the guarded path a visitor was turned away from.
func (h *Holder) RememberPath(path string) {
	h.lock.Lock()
	h.returnPath = path
	h.lock.Unlock()
}

// TakeReturnPath returns and forgets the remembered path.
func (h *Holder) TakeReturnPath() string {
	h.lock.Lock()
	defer h.lock.Unlock()
	path := h.returnPath
	h.returnPath = ""
	return path
}
