/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

// Package wallet is the boundary to the browser wallet extension.
package wallet

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrRejected is returned when the user dismissed the account request.
	ErrRejected = errors.New("account request rejected")
	// ErrAbsent is returned when no wallet extension is injected.
	ErrAbsent = errors.New("wallet extension absent")
	// ErrInvalidAddress is returned for anything that is not a hex account.
	ErrInvalidAddress = errors.New("invalid wallet address")
)

// Provider is what the application consumes from the injected extension.
type Provider interface {
	// Present reports whether an extension is injected at all.
	Present() bool
	IsMetaMask() bool
	// SelectedAddress is empty when the extension has no selected account.
	SelectedAddress() string
	// RequestAccounts asks the user for account access (eth_requestAccounts).
	RequestAccounts(ctx context.Context) ([]string, error)
	// OnAccountsChanged subscribes fn to accountsChanged events.
	OnAccountsChanged(fn func(accounts []string)) Subscription
}

// Subscription is released by its owner when the owning view goes away.
// Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}
