/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecertify/ecertify/node/session"
	"github.com/ecertify/ecertify/node/wallet"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type single struct {
	holder *session.Holder
}

func (s single) Holder(*gin.Context) *session.Holder {
	return s.holder
}

func newHolder(t *testing.T, role session.Role) *session.Holder {
	t.Helper()
	bridge := wallet.NewBridge()
	h := session.NewHolder(bridge, session.NewMemoryRoleStore(), session.NewQueue(), session.Options{})
	if role == session.RoleNone {
		return h
	}
	bridge.StageAccounts([]string{"0x52908400098527886e0f7030069857d2e4169ee7"}, false)
	require.NoError(t, h.Connect(context.Background()))
	require.NoError(t, h.SelectRole(role))
	return h
}

func newEngine(h *session.Holder, rendered *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	src := single{holder: h}
	page := func(c *gin.Context) {
		*rendered = append(*rendered, c.FullPath())
		c.String(http.StatusOK, "page")
	}
	e.GET(StudentDashboardPath, Pages(session.RoleStudent, src), page)
	e.GET(InstituteDashboardPath, Pages(session.RoleInstitute, src), page)
	e.GET("/api/any", API(session.RoleNone, src), page)
	e.GET("/api/institute", API(session.RoleInstitute, src), page)
	return e
}

func get(e *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	e.ServeHTTP(w, req)
	return w
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		s        session.Session
		required session.Role
		want     Decision
	}{
		{session.Session{}, session.RoleStudent, Unauthenticated},
		{session.Session{Connected: true, Address: "0x1"}, session.RoleStudent, Unauthenticated},
		{session.Session{Connected: true, Role: session.RoleStudent}, session.RoleStudent, Authorized},
		{session.Session{Connected: true, Role: session.RoleStudent}, session.RoleInstitute, WrongRole},
		{session.Session{Connected: true, Role: session.RoleInstitute}, session.RoleNone, Authorized},
		{session.Session{Connected: true}, session.RoleNone, Unauthenticated},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Evaluate(tc.s, tc.required), "%+v requires %s", tc.s, tc.required)
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/student/dashboard", DashboardPath(session.RoleStudent))
	assert.Equal(t, "/institute/dashboard", DashboardPath(session.RoleInstitute))
	assert.Equal(t, "/", DashboardPath(session.RoleNone))
	assert.Equal(t, "/student/certificates", CertificatesPath(session.RoleStudent))
	assert.Equal(t, "/institute/certificates", CertificatesPath(session.RoleInstitute))
	assert.Equal(t, "/", CertificatesPath(session.RoleNone))
}

func TestPagesUnauthenticated(t *testing.T) {
	var rendered []string
	h := newHolder(t, session.RoleNone)
	w := get(newEngine(h, &rendered), StudentDashboardPath)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	assert.Empty(t, rendered)
	assert.Equal(t, StudentDashboardPath, h.TakeReturnPath())
}

func TestPagesWrongRole(t *testing.T) {
	var rendered []string
	h := newHolder(t, session.RoleStudent)
	w := get(newEngine(h, &rendered), InstituteDashboardPath)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, StudentDashboardPath, w.Header().Get("Location"))
	assert.Empty(t, rendered)
	assert.Empty(t, h.TakeReturnPath())
}

func TestPagesAuthorized(t *testing.T) {
	var rendered []string
	h := newHolder(t, session.RoleInstitute)
	w := get(newEngine(h, &rendered), InstituteDashboardPath)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{InstituteDashboardPath}, rendered)
}

func TestAPI(t *testing.T) {
	var rendered []string
	e := newEngine(newHolder(t, session.RoleNone), &rendered)
	assert.Equal(t, http.StatusUnauthorized, get(e, "/api/any").Code)

	e = newEngine(newHolder(t, session.RoleStudent), &rendered)
	assert.Equal(t, http.StatusOK, get(e, "/api/any").Code)
	w := get(e, "/api/institute")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":403`)
	assert.Equal(t, []string{"/api/any"}, rendered)
}
