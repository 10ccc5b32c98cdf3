// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Balances  *PoolHandle `prefix:"B"`
	Supply    *PoolHandle `prefix:"S"`
	Assets    *PoolHandle `prefix:"A"`
	Nonce     *PoolHandle `prefix:"N"`
	OwnerList *PoolHandle `prefix:"L"`
	TestData  *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database with its pools
type Store struct {
	sync.RWMutex
	Pools

	log    *logger.L
	db     *leveldb.DB
	trx    Transaction
	access Access
}

// Open - open up the database and initialise its pools
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}

	return setup(database, db, readOnly)
}

// OpenMemory - create an empty database held in memory
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup("memory", db, ReadWrite)
}

func setup(name string, db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %s is not initialised", name)
			return nil, fault.ErrNotInitialised
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	} else if version < currentDBVersion {
		log.Criticalf("database version: %d < current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	store := &Store{
		log:    log,
		db:     db,
		access: newDA(db, new(leveldb.Batch), newCache()),
	}
	store.trx = newTransaction(store.access)

	// this will be a struct type
	poolType := reflect.TypeOf(store.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&store.Pools).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			store:  store,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("opened database: %s  version: %d", name, currentDBVersion)

	ok = true // prevent db close
	return store, nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.log.Info("closed")
	}
}

// Begin - start the single write transaction
//
// only one transaction may be active; it must be finished by Commit
// or Abort before the next Begin
func (s *Store) Begin() (Transaction, error) {
	err := s.trx.Begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// Get - read committed data from a pool
func (s *Store) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// GetN - read committed uint64 from a pool
func (s *Store) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

// Has - check committed key in a pool
func (s *Store) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
