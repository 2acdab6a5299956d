/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/node/common"
	"github.com/ecertify/ecertify/node/docstore"
	"github.com/ecertify/ecertify/node/guard"
	"github.com/ecertify/ecertify/node/session"
	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type DocumentHandler struct {
	reg   *Registry
	store docstore.Store
	log   logger.Logger
}

func NewDocumentHandler(reg *Registry, store docstore.Store, log logger.Logger) *DocumentHandler {
	return &DocumentHandler{reg: reg, store: store, log: log}
}

func (d *DocumentHandler) RegisterRoutes(server *gin.Engine) {
	docgroup := server.Group("/api/documents")
	docgroup.POST("", guard.API(session.RoleInstitute, d.reg), d.upload)
	docgroup.GET("/:cid", guard.API(session.RoleNone, d.reg), d.download)
	docgroup.GET("/:cid/link", guard.API(session.RoleNone, d.reg), d.link)
}

func (d *DocumentHandler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, configs.MaxDocumentSize+(1<<20))
	fh, err := c.FormFile(common.Form_File)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.ReturnJSON(c, http.StatusRequestEntityTooLarge, common.ERR_FileTooLarge, nil)
			return
		}
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_EmptyFile, nil)
		return
	}
	if fh.Size == 0 {
		common.ReturnJSON(c, http.StatusBadRequest, common.ERR_EmptyFile, nil)
		return
	}
	if fh.Size > configs.MaxDocumentSize {
		common.ReturnJSON(c, http.StatusRequestEntityTooLarge, common.ERR_FileTooLarge, nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		d.fail(c, "open upload", err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		d.fail(c, "read upload", err)
		return
	}

	contentType := fh.Header.Get(common.Header_ContentType)
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	doc := docstore.File{
		Name:        filepath.Base(fh.Filename),
		ContentType: contentType,
		Data:        data,
	}

	ctx := c.Request.Context()
	if publicKey := c.PostForm(common.Form_PublicKey); publicKey != "" {
		doc, err = d.store.EncryptFile(ctx, doc, publicKey)
		if err != nil {
			d.fail(c, "encrypt", err)
			return
		}
	}
	cid, err := d.store.StoreFile(ctx, doc)
	if err != nil {
		d.fail(c, "store", err)
		return
	}
	d.log.Storage("info", fmt.Sprintf("visitor %s stored %s as %s", d.reg.Visit(c).ID, doc.Name, cid))
	common.ReturnJSON(c, http.StatusOK, common.OK, gin.H{
		"cid":  cid,
		"link": d.store.ShareableLink(cid),
	})
}

func (d *DocumentHandler) download(c *gin.Context) {
	f, err := d.store.RetrieveFile(c.Request.Context(), c.Param(common.Param_Cid))
	if err != nil {
		d.fail(c, "retrieve", err)
		return
	}
	if f == nil {
		common.ReturnJSON(c, http.StatusNotFound, common.ERR_NotFound, nil)
		return
	}
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	c.Data(http.StatusOK, contentType, f.Data)
}

func (d *DocumentHandler) link(c *gin.Context) {
	cid := c.Param(common.Param_Cid)
	common.ReturnJSON(c, http.StatusOK, common.OK, gin.H{
		"cid":  cid,
		"link": d.store.ShareableLink(cid),
	})
}

func (d *DocumentHandler) fail(c *gin.Context, op string, err error) {
	d.log.Storage("err", fmt.Sprintf("%s: %v", op, err))
	if errors.Is(err, docstore.ErrUninitialized) {
		common.ReturnJSON(c, http.StatusServiceUnavailable, common.ERR_ClientUnavailable, nil)
		return
	}
	common.ReturnJSON(c, http.StatusInternalServerError, common.ERR_SystemErr, nil)
}
