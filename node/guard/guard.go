/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

// Package guard decides who may see the role-restricted parts of the site.
package guard

import (
	"net/http"

	"github.com/ecertify/ecertify/node/common"
	"github.com/ecertify/ecertify/node/session"
	"github.com/gin-gonic/gin"
)

type Decision uint8

const (
	Unauthenticated Decision = iota
	WrongRole
	Authorized
)

func (d Decision) String() string {
	switch d {
	case Unauthenticated:
		return "unauthenticated"
	case WrongRole:
		return "wrong role"
	case Authorized:
		return "authorized"
	}
	return "unknown"
}

const (
	LoginPath                 = "/login"
	StudentDashboardPath      = "/student/dashboard"
	InstituteDashboardPath    = "/institute/dashboard"
	StudentCertificatesPath   = "/student/certificates"
	InstituteCertificatesPath = "/institute/certificates"
)

// Evaluate is recomputed on every request. RoleNone as required accepts
// any authenticated role.
func Evaluate(s session.Session, required session.Role) Decision {
	if !s.Authenticated() {
		return Unauthenticated
	}
	if required != session.RoleNone && s.Role != required {
		return WrongRole
	}
	return Authorized
}

// DashboardPath is the landing page of a role, "/" for none.
func DashboardPath(r session.Role) string {
	switch r {
	case session.RoleStudent:
		return StudentDashboardPath
	case session.RoleInstitute:
		return InstituteDashboardPath
	}
	return "/"
}

// CertificatesPath is the certificate list of a role, "/" for none.
func CertificatesPath(r session.Role) string {
	switch r {
	case session.RoleStudent:
		return StudentCertificatesPath
	case session.RoleInstitute:
		return InstituteCertificatesPath
	}
	return "/"
}

// Source finds the session holder of the visitor behind a request.
type Source interface {
	Holder(c *gin.Context) *session.Holder
}

// Pages redirects instead of rendering a page the visitor may not see.
func Pages(required session.Role, src Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := src.Holder(c)
		s := h.Snapshot()
		switch Evaluate(s, required) {
		case Unauthenticated:
			h.RememberPath(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		case WrongRole:
			c.Redirect(http.StatusFound, DashboardPath(s.Role))
			c.Abort()
		default:
			c.Next()
		}
	}
}

// API answers refused calls with the json envelope.
func API(required session.Role, src Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Evaluate(src.Holder(c).Snapshot(), required) {
		case Unauthenticated:
			common.AbortJSON(c, http.StatusUnauthorized, common.ERR_Unauthenticated)
		case WrongRole:
			common.AbortJSON(c, http.StatusForbidden, common.ERR_WrongRole)
		default:
			c.Next()
		}
	}
}
