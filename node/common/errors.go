/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package common

const (
	// ok
	OK = "ok"

	// server err
	ERR_SystemErr = "system error"

	// session err
	ERR_Unauthenticated = "please connect your wallet and choose a role"
	ERR_WrongRole       = "this page belongs to another role"
	ERR_NotConnected    = "please connect your wallet first"
	ERR_EmptyCode       = "please enter the verification code"
	ERR_WalletAbsent    = "wallet extension is not installed"
	ERR_WalletRejected  = "failed to connect wallet"

	// client err
	ERR_InvalidBody    = "invalid request body"
	ERR_InvalidRole    = "invalid role"
	ERR_InvalidID      = "invalid certificate id"
	ERR_InvalidAddress = "invalid wallet address"
	ERR_EmptyFile      = "empty file"
	ERR_FileTooLarge   = "file too large"
	ERR_NotFound       = "not found"

	// capability err
	ERR_ClientUnavailable = "the service is not available, please try again later."
)
