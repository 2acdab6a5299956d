/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package session

import "github.com/pkg/errors"

var (
	// ErrWalletAbsent: no extension injected, the user got an install link.
	ErrWalletAbsent = errors.New("wallet extension is not installed")
	// ErrWalletRejected: the extension call failed or was dismissed.
	ErrWalletRejected = errors.New("wallet connection failed")
	// ErrNotConnected: a role can only be chosen with a connected wallet.
	ErrNotConnected = errors.New("wallet is not connected")
	ErrInvalidRole  = errors.New("invalid role")
)
