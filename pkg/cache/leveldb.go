/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package cache

import (
	"os"
	"sync"

	"github.com/ecertify/ecertify/configs"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// the store holds a handful of short strings per visitor
const (
	blockCache   = 8 * opt.MiB
	writeBuffer  = 4 * opt.MiB
	openFiles    = 32
	bloomBitsKey = 10
)

// LevelDB keeps every key under "<namespace>/", so several components can
// share one database directory.
type LevelDB struct {
	lock   sync.RWMutex
	db     *leveldb.DB
	prefix []byte
}

var _ Cache = (*LevelDB)(nil)

func IsNotFound(err error) bool {
	return errors.Is(err, leveldb.ErrNotFound)
}

// NewCache opens (or creates) the database in dir. A corrupted database is
// recovered instead of refused.
func NewCache(dir string, namespace string) (*LevelDB, error) {
	if err := os.MkdirAll(dir, configs.DirMode); err != nil {
		return nil, errors.Wrap(err, "[MkdirAll]")
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		Filter:                 filter.NewBloomFilter(bloomBitsKey),
		BlockCacheCapacity:     blockCache,
		WriteBuffer:            writeBuffer,
		OpenFilesCacheCapacity: openFiles,
		DisableSeeksCompaction: true,
	})
	if lerrors.IsCorrupted(err) {
		db, err = leveldb.RecoverFile(dir, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[OpenFile] %s", dir)
	}

	c := &LevelDB{db: db}
	if namespace != "" {
		c.prefix = []byte(namespace + "/")
	}
	return c, nil
}

func (c *LevelDB) fullKey(k []byte) []byte {
	full := make([]byte, 0, len(c.prefix)+len(k))
	return append(append(full, c.prefix...), k...)
}

func (c *LevelDB) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.db.Close()
}

func (c *LevelDB) Has(key []byte) (bool, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.db.Has(c.fullKey(key), nil)
}

func (c *LevelDB) Get(key []byte) ([]byte, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.db.Get(c.fullKey(key), nil)
}

func (c *LevelDB) Put(key []byte, value []byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.db.Put(c.fullKey(key), value, nil)
}

func (c *LevelDB) Delete(key []byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.db.Delete(c.fullKey(key), nil)
}

func (c *LevelDB) QueryPrefix(prefix string) (map[string][]byte, error) {
	full := c.fullKey([]byte(prefix))
	result := make(map[string][]byte)

	c.lock.RLock()
	defer c.lock.RUnlock()
	iter := c.db.NewIterator(util.BytesPrefix(full), nil)
	defer iter.Release()
	for iter.Next() {
		// the iterator reuses its buffers
		value := append([]byte(nil), iter.Value()...)
		result[string(iter.Key()[len(full):])] = value
	}
	return result, iter.Error()
}
