/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"sync"

	"github.com/ecertify/ecertify/configs"
	"github.com/ecertify/ecertify/pkg/cache"
	"github.com/pkg/errors"
)

// RoleStore persists the role a visitor chose. Load reports false when no
// valid role is stored.
type RoleStore interface {
	Load() (Role, bool, error)
	Save(r Role) error
	Remove() error
}

type CacheRoleStore struct {
	db  cache.Cache
	key []byte
}

var _ RoleStore = (*CacheRoleStore)(nil)

// NewCacheRoleStore binds the role of one visitor to db.
func NewCacheRoleStore(db cache.Cache, visitor string) *CacheRoleStore {
	return &CacheRoleStore{
		db:  db,
		key: []byte(rolePrefix() + visitor),
	}
}

func rolePrefix() string {
	return configs.RoleStorageKey + ":"
}

func (s *CacheRoleStore) Load() (Role, bool, error) {
	val, err := s.db.Get(s.key)
	if err != nil {
		if cache.IsNotFound(err) {
			return RoleNone, false, nil
		}
		return RoleNone, false, errors.Wrap(err, "[Get]")
	}
	r := Role(val)
	if !r.Valid() {
		return RoleNone, false, nil
	}
	return r, true, nil
}

func (s *CacheRoleStore) Save(r Role) error {
	if !r.Valid() {
		return errors.Wrapf(ErrInvalidRole, "%q", string(r))
	}
	return errors.Wrap(s.db.Put(s.key, []byte(r)), "[Put]")
}

func (s *CacheRoleStore) Remove() error {
	return errors.Wrap(s.db.Delete(s.key), "[Delete]")
}

// ListRoles returns every persisted role keyed by visitor.
func ListRoles(db cache.Reader) (map[string]Role, error) {
	values, err := db.QueryPrefix(rolePrefix())
	if err != nil {
		return nil, errors.Wrap(err, "[QueryPrefix]")
	}
	roles := make(map[string]Role, len(values))
	for visitor, v := range values {
		roles[visitor] = Role(v)
	}
	return roles, nil
}

type MemoryRoleStore struct {
	lock sync.Mutex
	role Role
	set  bool
	// Err, when set, is returned by every call.
	Err error
}

var _ RoleStore = (*MemoryRoleStore)(nil)

func NewMemoryRoleStore() *MemoryRoleStore {
	return &MemoryRoleStore{}
}

func (s *MemoryRoleStore) Load() (Role, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.Err != nil {
		return RoleNone, false, s.Err
	}
	if !s.set || !s.role.Valid() {
		return RoleNone, false, nil
	}
	return s.role, true, nil
}

func (s *MemoryRoleStore) Save(r Role) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if !r.Valid() {
		return errors.Wrapf(ErrInvalidRole, "%q", string(r))
	}
	s.role, s.set = r, true
	return nil
}

func (s *MemoryRoleStore) Remove() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.role, s.set = RoleNone, false
	return nil
}
