// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/attribute"
	"github.com/bitmark-inc/ledgerd/balance"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/logger"
)

// operation names used for logging and metrics
const (
	OpMint             = "mint"
	OpTransferBalance  = "transfer_balance"
	OpBurn             = "burn"
	OpCreateAsset      = "create_asset"
	OpTransferAsset    = "transfer_asset"
	OpGenesis          = "genesis"
	defaultCapacity    = 5
	defaultBalancePage = 100
)

// Configuration - ledger parameters
type Configuration struct {
	Name             string
	Symbol           string
	IdentifierLength int
	OwnerCapacity    int
	Deriver          attribute.Deriver
}

// Collaborators - services the ledger consumes
//
// Beacon is required; a nil Clock uses the system clock and a nil
// EventSink or Monitor discards
type Collaborators struct {
	Clock   Clock
	Beacon  Beacon
	Sink    EventSink
	Monitor Monitor
}

// Allocation - initial balance minted into an empty ledger
type Allocation struct {
	Account account.Account `json:"account"`
	Amount  uint64          `json:"amount"`
}

// Info - static description of the ledger
type Info struct {
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	IdentifierLength int    `json:"identifierLength"`
	OwnerCapacity    int    `json:"ownerCapacity"`
}

// Service - the ledger
type Service struct {
	sync.RWMutex

	log      *logger.L
	store    *storage.Store
	balances *balance.Ledger
	registry *asset.Registry

	clock   Clock
	beacon  Beacon
	sink    EventSink
	monitor Monitor

	info     Info
	sequence uint64
}

// New - create the ledger service over an open store
func New(store *storage.Store, configuration Configuration, collaborators Collaborators) (*Service, error) {
	if nil == collaborators.Beacon {
		return nil, fault.ErrMissingBeaconSeed
	}

	capacity := configuration.OwnerCapacity
	if 0 == capacity {
		capacity = defaultCapacity
	}

	registry, err := asset.New(store.Assets, store.Nonce, store.OwnerList, asset.Configuration{
		IdentifierLength: configuration.IdentifierLength,
		Capacity:         capacity,
		Deriver:          configuration.Deriver,
	})
	if nil != err {
		return nil, err
	}

	s := &Service{
		log:      logger.New("ledger"),
		store:    store,
		balances: balance.New(store.Balances, store.Supply),
		registry: registry,
		clock:    collaborators.Clock,
		beacon:   collaborators.Beacon,
		sink:     collaborators.Sink,
		monitor:  collaborators.Monitor,
		info: Info{
			Name:             configuration.Name,
			Symbol:           configuration.Symbol,
			IdentifierLength: registry.IdentifierLength(),
			OwnerCapacity:    registry.Capacity(),
		},
	}
	if nil == s.clock {
		s.clock = NewSystemClock()
	}
	if nil == s.sink {
		s.sink = discard{}
	}
	if nil == s.monitor {
		s.monitor = discard{}
	}

	s.monitor.Supply(s.balances.TotalSupply(store))
	s.monitor.Assets(registry.Nonce(store))

	s.log.Infof("ledger: %q  symbol: %q  id length: %d  capacity: %d", s.info.Name, s.info.Symbol, s.info.IdentifierLength, s.info.OwnerCapacity)
	return s, nil
}

// Mint - create amount in owner's balance
func (s *Service) Mint(owner account.Account, amount uint64) error {
	s.Lock()
	defer s.Unlock()

	err := s.apply(OpMint, func(trx storage.Transaction) error {
		return s.balances.Mint(trx, owner, amount)
	})
	if nil != err {
		return err
	}

	s.emit(Event{Kind: Minted, Account: &owner, Amount: amount})
	return nil
}

// TransferBalance - move amount between two balances
func (s *Service) TransferBalance(from account.Account, to account.Account, amount uint64) error {
	s.Lock()
	defer s.Unlock()

	err := s.apply(OpTransferBalance, func(trx storage.Transaction) error {
		return s.balances.Transfer(trx, from, to, amount)
	})
	if nil != err {
		return err
	}

	s.emit(Event{Kind: Transferred, From: &from, To: &to, Amount: amount})
	return nil
}

// Burn - destroy amount from owner's balance
func (s *Service) Burn(owner account.Account, amount uint64) error {
	s.Lock()
	defer s.Unlock()

	err := s.apply(OpBurn, func(trx storage.Transaction) error {
		return s.balances.Burn(trx, owner, amount)
	})
	if nil != err {
		return err
	}

	s.emit(Event{Kind: Burned, Account: &owner, Amount: amount})
	return nil
}

// CreateAsset - register a new asset for owner
func (s *Service) CreateAsset(owner account.Account, price uint64) (asset.Record, error) {
	s.Lock()
	defer s.Unlock()

	record := asset.Record{}
	err := s.apply(OpCreateAsset, func(trx storage.Transaction) error {
		subject := make([]byte, 8)
		binary.BigEndian.PutUint64(subject, s.registry.Nonce(trx))
		entropy := s.beacon.Random(subject)

		var err error
		record, err = s.registry.Create(trx, owner, price, s.clock.Now(), entropy)
		return err
	})
	if nil != err {
		return asset.Record{}, err
	}

	s.emit(Event{Kind: AssetCreated, To: &owner, AssetId: record.Id})
	return record, nil
}

// TransferAsset - change the owner of an asset
func (s *Service) TransferAsset(from account.Account, to account.Account, id asset.Identifier) (asset.Record, error) {
	s.Lock()
	defer s.Unlock()

	record := asset.Record{}
	err := s.apply(OpTransferAsset, func(trx storage.Transaction) error {
		var err error
		record, err = s.registry.Transfer(trx, id, from, to)
		return err
	})
	if nil != err {
		return asset.Record{}, err
	}

	s.emit(Event{Kind: AssetTransferred, From: &from, To: &to, AssetId: record.Id})
	return record, nil
}

// Genesis - mint the initial allocations into an empty ledger
//
// returns false without changes if any balance already exists
func (s *Service) Genesis(allocations []Allocation) (bool, error) {
	s.Lock()
	defer s.Unlock()

	existing, err := s.balances.List(nil, 1)
	if nil != err {
		return false, err
	}
	if 0 != len(existing) || 0 == len(allocations) {
		return false, nil
	}

	err = s.apply(OpGenesis, func(trx storage.Transaction) error {
		for _, a := range allocations {
			err := s.balances.Mint(trx, a.Account, a.Amount)
			if nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		return false, err
	}

	for i := range allocations {
		s.emit(Event{Kind: Minted, Account: &allocations[i].Account, Amount: allocations[i].Amount})
	}
	s.log.Infof("genesis: %d allocations  supply: %d", len(allocations), s.balances.TotalSupply(s.store))
	return true, nil
}

// run f in a new transaction: commit on success, abort on any error
//
// caller must hold the write lock
func (s *Service) apply(operation string, f func(storage.Transaction) error) error {
	trx, err := s.store.Begin()
	if nil != err {
		s.log.Errorf("%s: begin error: %s", operation, err)
		s.monitor.Operation(operation, err)
		return err
	}

	err = f(trx)
	if nil == err {
		err = trx.Commit()
		if nil != err {
			s.log.Errorf("%s: commit error: %s", operation, err)
		}
	} else {
		trx.Abort()
		s.log.Debugf("%s: rejected: %s", operation, err)
	}

	s.monitor.Operation(operation, err)
	if nil == err {
		s.monitor.Supply(s.balances.TotalSupply(s.store))
		s.monitor.Assets(s.registry.Nonce(s.store))
	}
	return err
}

// stamp and deliver an event; caller must hold the write lock
func (s *Service) emit(event Event) {
	s.sequence += 1
	event.Sequence = s.sequence
	event.Timestamp = s.clock.Now()
	s.log.Tracef("event: %d %s", event.Sequence, event.Kind)
	s.sink.Deliver(event)
}

// BalanceOf - current balance of an account
func (s *Service) BalanceOf(owner account.Account) uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.balances.BalanceOf(s.store, owner)
}

// TotalSupply - sum of all balances
func (s *Service) TotalSupply() uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.balances.TotalSupply(s.store)
}

// Balances - page through the balance entries
func (s *Service) Balances(start *account.Account, count int) ([]balance.Entry, error) {
	s.RLock()
	defer s.RUnlock()
	if count <= 0 {
		count = defaultBalancePage
	}
	return s.balances.List(start, count)
}

// Asset - fetch one asset
func (s *Service) Asset(id asset.Identifier) (asset.Record, error) {
	s.RLock()
	defer s.RUnlock()
	return s.registry.Get(s.store, id)
}

// Owned - assets held by an account
func (s *Service) Owned(owner account.Account) ([]asset.Record, error) {
	s.RLock()
	defer s.RUnlock()
	return s.registry.Owned(s.store, owner)
}

// Nonce - seed for the next asset identifier, equal to the number of assets created
func (s *Service) Nonce() uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.registry.Nonce(s.store)
}

// Audit - recompute the sum of balances and compare with total supply
func (s *Service) Audit() (uint64, uint64, error) {
	s.RLock()
	defer s.RUnlock()

	supply := s.balances.TotalSupply(s.store)
	sum, err := s.balances.Sum()
	if nil != err {
		return sum, supply, err
	}
	if sum != supply {
		s.log.Criticalf("audit: balances: %d  total supply: %d", sum, supply)
		return sum, supply, fault.ErrSupplyMismatch
	}
	return sum, supply, nil
}

// Info - name, symbol and registry parameters
func (s *Service) Info() Info {
	return s.info
}

// discards events and measurements
type discard struct{}

func (discard) Deliver(Event)           {}
func (discard) Operation(string, error) {}
func (discard) Supply(uint64)           {}
func (discard) Assets(uint64)           {}
