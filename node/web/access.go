/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"time"

	"github.com/ecertify/ecertify/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request to the access log.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		level := "info"
		if c.Writer.Status() >= 500 {
			level = "err"
		}
		log.Access(level, fmt.Sprintf("%s %s %d %v %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		))
	}
}

// Recovery logs a panic to the panic log and answers 500.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Pnc(fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
		c.AbortWithStatus(500)
	})
}
