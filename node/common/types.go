/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package common

import "github.com/gin-gonic/gin"

type RespType struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func ReturnJSON(c *gin.Context, code int, msg string, data any) {
	c.JSON(code, RespType{
		Code: code,
		Msg:  msg,
		Data: data,
	})
}

func AbortJSON(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, RespType{
		Code: code,
		Msg:  msg,
	})
}
