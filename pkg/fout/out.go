/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package out

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	HiRed    = 91
	HiGreen  = 92
	HiYellow = 93
	HiBlue   = 94
)

const (
	OkPrompt    = "OK"
	WarnPrompt  = "!!"
	ErrPrompt   = "XX"
	InputPrompt = ">>"
	TipPrompt   = "++"
)

const TimeFormat = "2006-01-02 15:04:05"

// Printer writes prompted lines for the command line tools.
type Printer struct {
	lock  sync.Mutex
	w     io.Writer
	color bool
	now   func() time.Time
}

var std = NewPrinter(os.Stdout, true)

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color, now: time.Now}
}

func (p *Printer) Input(msg string) {
	p.line(HiBlue, InputPrompt, msg, false)
}

func (p *Printer) Tip(msg string) {
	p.line(HiGreen, TipPrompt, msg, true)
}

func (p *Printer) Err(msg string) {
	p.line(HiRed, ErrPrompt, msg, true)
}

func (p *Printer) Warn(msg string) {
	p.line(HiYellow, WarnPrompt, msg, true)
}

func (p *Printer) Ok(msg string) {
	p.line(HiGreen, OkPrompt, msg, true)
}

func (p *Printer) line(color int, prompt, msg string, stamped bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.color {
		prompt = fmt.Sprintf("\x1b[0;%dm%s\x1b[0m", color, prompt)
	}
	if stamped {
		msg = fmt.Sprintf("%v %s", p.now().Format(TimeFormat), msg)
	}
	fmt.Fprintln(p.w, prompt, msg)
}

func Input(msg string) { std.Input(msg) }

func Tip(msg string) { std.Tip(msg) }

func Err(msg string) { std.Err(msg) }

func Warn(msg string) { std.Warn(msg) }

func Ok(msg string) { std.Ok(msg) }
