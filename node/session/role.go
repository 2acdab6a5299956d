/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package session

import "github.com/pkg/errors"

// Role is the visitor category gating the dashboards.
type Role string

const (
	RoleNone      Role = ""
	RoleStudent   Role = "student"
	RoleInstitute Role = "institute"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleInstitute
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return RoleNone, errors.Wrapf(ErrInvalidRole, "%q", s)
	}
	return r, nil
}
