/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package session

// Session is a snapshot of one visitor's connection state.
type Session struct {
	Connected bool
	Role      Role
	Address   string
}

// Authenticated is false for a connected session that has not chosen a role.
func (s Session) Authenticated() bool {
	return s.Connected && s.Role.Valid()
}
