// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := newCache()

	_, staged := c.Get("missing")
	assert.False(t, staged, "empty cache returned a value")

	c.Set(dbPut, "key", []byte("value"))
	value, staged := c.Get("key")
	assert.True(t, staged, "put not staged")
	assert.Equal(t, []byte("value"), value, "wrong value")

	c.Set(dbDelete, "key", nil)
	value, staged = c.Get("key")
	assert.True(t, staged, "delete not staged")
	assert.Nil(t, value, "deleted key returned a value")
}

func TestCacheClear(t *testing.T) {
	c := newCache()
	c.Set(dbPut, "one", []byte("1"))
	c.Set(dbPut, "two", []byte("2"))

	c.Clear()

	_, staged := c.Get("one")
	assert.False(t, staged, "clear did not remove one")
	_, staged = c.Get("two")
	assert.False(t, staged, "clear did not remove two")
}

func TestCacheEmptyValue(t *testing.T) {
	c := newCache()
	c.Set(dbPut, "empty", []byte{})

	value, staged := c.Get("empty")
	assert.True(t, staged, "empty value not staged")
	assert.NotNil(t, value, "empty value must be distinct from a delete")
}
