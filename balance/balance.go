// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - fungible balances and total supply
package balance

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/safemath"
	"github.com/bitmark-inc/ledgerd/storage"
)

var totalKey = []byte("total")

// Ledger - balances keyed by account plus a total supply scalar
type Ledger struct {
	balances *storage.PoolHandle
	supply   *storage.PoolHandle
}

// Entry - one account balance
type Entry struct {
	Account account.Account `json:"account"`
	Amount  uint64          `json:"amount"`
}

// New - ledger over the balance and supply pools
func New(balances *storage.PoolHandle, supply *storage.PoolHandle) *Ledger {
	return &Ledger{
		balances: balances,
		supply:   supply,
	}
}

// BalanceOf - current balance, zero for an unknown account
func (l *Ledger) BalanceOf(r storage.Reader, owner account.Account) uint64 {
	n, _ := r.GetN(l.balances, owner.Bytes())
	return n
}

// TotalSupply - sum of all balances
func (l *Ledger) TotalSupply(r storage.Reader) uint64 {
	n, _ := r.GetN(l.supply, totalKey)
	return n
}

// Mint - create new value in an account
//
// both balance and supply are computed before anything is staged so
// an overflow leaves the transaction untouched
func (l *Ledger) Mint(trx storage.Transaction, owner account.Account, amount uint64) error {
	balance, err := safemath.Add(l.BalanceOf(trx, owner), amount)
	if nil != err {
		return err
	}
	supply, err := safemath.Add(l.TotalSupply(trx), amount)
	if nil != err {
		return err
	}

	trx.PutN(l.balances, owner.Bytes(), balance)
	trx.PutN(l.supply, totalKey, supply)
	return nil
}

// Transfer - move value between accounts
//
// the sender must hold strictly more than the amount
func (l *Ledger) Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64) error {
	fromBalance := l.BalanceOf(trx, from)
	if fromBalance <= amount {
		return fault.ErrInsufficientBalance
	}

	debited, err := safemath.Sub(fromBalance, amount)
	if nil != err {
		return err
	}

	// read after the debit is known so a self transfer nets to zero
	toBalance := l.BalanceOf(trx, to)
	if from == to {
		toBalance = debited
	}
	credited, err := safemath.Add(toBalance, amount)
	if nil != err {
		return err
	}

	trx.PutN(l.balances, from.Bytes(), debited)
	trx.PutN(l.balances, to.Bytes(), credited)
	return nil
}

// Burn - destroy value held by an account
//
// a balance burned to zero keeps its entry
func (l *Ledger) Burn(trx storage.Transaction, owner account.Account, amount uint64) error {
	balance := l.BalanceOf(trx, owner)
	if balance < amount {
		return fault.ErrInsufficientBalance
	}

	remaining, err := safemath.Sub(balance, amount)
	if nil != err {
		return err
	}
	supply, err := safemath.Sub(l.TotalSupply(trx), amount)
	if nil != err {
		return err
	}

	trx.PutN(l.balances, owner.Bytes(), remaining)
	trx.PutN(l.supply, totalKey, supply)
	return nil
}

// List - page through committed balances in key order
//
// start is the account after which to continue, nil for the first page
func (l *Ledger) List(start *account.Account, count int) ([]Entry, error) {
	cursor := l.balances.NewFetchCursor()
	if nil != start {
		cursor.Seek(append(start.Bytes(), 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		owner, err := account.FromBytes(e.Key)
		if nil != err {
			return nil, err
		}
		n, _ := storage.DecodeN(e.Value)
		entries = append(entries, Entry{
			Account: owner,
			Amount:  n,
		})
	}
	return entries, nil
}

// Sum - add up every committed balance
func (l *Ledger) Sum() (uint64, error) {
	total := uint64(0)
	err := l.balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n, ok := storage.DecodeN(value)
		if !ok {
			return fault.ErrSupplyMismatch
		}
		var err error
		total, err = safemath.Add(total, n)
		return err
	})
	return total, err
}
