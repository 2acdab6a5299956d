/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/node/common"
	"github.com/ecertify/ecertify/node/fixture"
	"github.com/ecertify/ecertify/node/guard"
	"github.com/ecertify/ecertify/node/session"
	"github.com/ecertify/ecertify/node/wallet"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type PageHandler struct {
	reg        *Registry
	tmpl       *template.Template
	installURL string
	now        func() time.Time
}

func NewPageHandler(reg *Registry, installURL string) *PageHandler {
	return &PageHandler{
		reg:        reg,
		tmpl:       template.Must(template.ParseFS(templateFS, "templates/*.html")),
		installURL: installURL,
		now:        time.Now,
	}
}

func (p *PageHandler) RegisterRoutes(server *gin.Engine) {
	server.SetHTMLTemplate(p.tmpl)
	static, _ := fs.Sub(staticFS, "static")
	server.StaticFS("/static", http.FS(static))

	server.GET("/", p.page("home.html", "Home"))
	server.GET("/about", p.page("about.html", "About"))
	server.GET(guard.LoginPath, p.auth(false))
	server.GET("/register", p.auth(true))

	student := guard.Pages(session.RoleStudent, p.reg)
	institute := guard.Pages(session.RoleInstitute, p.reg)
	server.GET(guard.StudentDashboardPath, student, p.studentDashboard)
	server.GET(guard.InstituteDashboardPath, institute, p.instituteDashboard)
	server.GET(guard.StudentCertificatesPath, student, p.studentCertificates)
	server.GET(guard.InstituteCertificatesPath, institute, p.instituteCertificates)

	server.NoRoute(p.notFound)
}

type navItem struct {
	Name   string
	Path   string
	Active bool
}

type pageData struct {
	Title         string
	Brand         string
	Year          int
	Nav           []navItem
	Session       session.Session
	Authenticated bool
	ShortAddress  string
	Notifications []session.Notification
	InstallURL    string

	Register  bool
	Student   fixture.StudentDashboard
	Institute fixture.InstituteDashboard
}

// data renders the session of an existing visit only, a page view alone
// never opens one.
func (p *PageHandler) data(c *gin.Context, title string) pageData {
	var (
		snap  session.Session
		notes []session.Notification
	)
	if v := p.reg.Peek(c); v != nil {
		snap = v.Holder.Snapshot()
		notes = v.Queue.Drain()
	}
	return pageData{
		Title:         title,
		Brand:         configs.Brand,
		Year:          p.now().Year(),
		Nav:           navigation(snap, c.Request.URL.Path),
		Session:       snap,
		Authenticated: snap.Authenticated(),
		ShortAddress:  wallet.ShortAddress(snap.Address),
		Notifications: notes,
		InstallURL:    p.installURL,
	}
}

// navigation shows Dashboard and Certificates to authenticated visitors only.
func navigation(s session.Session, current string) []navItem {
	items := []navItem{{Name: "Home", Path: "/"}}
	if s.Authenticated() {
		items = append(items,
			navItem{Name: "Dashboard", Path: guard.DashboardPath(s.Role)},
			navItem{Name: "Certificates", Path: guard.CertificatesPath(s.Role)},
		)
	}
	items = append(items, navItem{Name: "About", Path: "/about"})
	for i := range items {
		items[i].Active = items[i].Path == current
	}
	return items
}

func (p *PageHandler) page(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, p.data(c, title))
	}
}

// auth sends authenticated visitors on to the page they were turned away
// from, or to their dashboard.
func (p *PageHandler) auth(register bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := p.reg.Holder(c)
		if s := h.Snapshot(); s.Authenticated() {
			target := h.TakeReturnPath()
			if target == "" {
				target = guard.DashboardPath(s.Role)
			}
			c.Redirect(http.StatusFound, target)
			return
		}
		title := "Login"
		if register {
			title = "Register"
		}
		data := p.data(c, title)
		data.Register = register
		c.HTML(http.StatusOK, "auth.html", data)
	}
}

func (p *PageHandler) studentDashboard(c *gin.Context) {
	data := p.data(c, "Student Dashboard")
	data.Student = fixture.Student()
	c.HTML(http.StatusOK, "student.html", data)
}

func (p *PageHandler) instituteDashboard(c *gin.Context) {
	data := p.data(c, "Institute Dashboard")
	data.Institute = fixture.Institute()
	c.HTML(http.StatusOK, "institute.html", data)
}

func (p *PageHandler) studentCertificates(c *gin.Context) {
	data := p.data(c, "My Certificates")
	data.Student = fixture.Student()
	c.HTML(http.StatusOK, "certificates.html", data)
}

func (p *PageHandler) instituteCertificates(c *gin.Context) {
	data := p.data(c, "Issued Certificates")
	data.Institute = fixture.Institute()
	c.HTML(http.StatusOK, "certificates.html", data)
}

func (p *PageHandler) notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		common.ReturnJSON(c, http.StatusNotFound, common.ERR_NotFound, nil)
		return
	}
	c.HTML(http.StatusNotFound, "notfound.html", p.data(c, "Page not found"))
}
