/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package out

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.now = func() time.Time { return time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC) }

	p.Ok("started")
	p.Err("failed")
	p.Input("enter key:")

	assert.Equal(t,
		"OK 2024-04-15 10:30:00 started\n"+
			"XX 2024-04-15 10:30:00 failed\n"+
			">> enter key:\n",
		buf.String())
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Input("x")
	assert.Equal(t, "\x1b[0;94m>>\x1b[0m x\n", buf.String())
}
