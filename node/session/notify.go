/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Action is a remediation offered with a notification.
type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Notification is a toast shown to the visitor.
type Notification struct {
	Level    Level         `json:"level"`
	Message  string        `json:"message"`
	Action   *Action       `json:"action,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

type Notifier interface {
	Notify(n Notification)
}

// maxQueued bounds a queue nobody drains
const maxQueued = 32

// Queue keeps notifications until the next page or api call drains them.
type Queue struct {
	lock  sync.Mutex
	items []Notification
}

var _ Notifier = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Notify(n Notification) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if len(q.items) == maxQueued {
		q.items = q.items[1:]
	}
	q.items = append(q.items, n)
}

func (q *Queue) Drain() []Notification {
	q.lock.Lock()
	defer q.lock.Unlock()
	items := q.items
	q.items = nil
	if items == nil {
		return []Notification{}
	}
	return items
}
