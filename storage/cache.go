// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache.go -package=mocks

// Cache - copies of stored values keyed by the string form of the tree key
//
// a key is only ever cached as present, removal from the database
// must be matched by a Delete
type Cache interface {
	Get(string) ([]byte, bool)
	Put(string, []byte)
	Delete(string)
	Flush()
}

const (
	valueExpiration = 2 * time.Minute
	cleanupInterval = 1 * time.Minute
)

type valueCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &valueCache{
		cache: cache.New(valueExpiration, cleanupInterval),
	}
}

// Get - a private copy of the cached value
func (c *valueCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return duplicate(obj.([]byte)), true
}

// Put - cache a copy, so the caller may reuse its slice
func (c *valueCache) Put(key string, value []byte) {
	c.cache.Set(key, duplicate(value), cache.DefaultExpiration)
}

func (c *valueCache) Delete(key string) {
	c.cache.Delete(key)
}

func (c *valueCache) Flush() {
	c.cache.Flush()
}

func duplicate(b []byte) []byte {
	d := make([]byte, len(b))
	copy(d, b)
	return d
}
