// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package attribute - categories derived from asset identity bytes
package attribute

import (
	"encoding/json"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Category - the derived attribute of an asset
type Category byte

// possible categories
const (
	Even Category = 0
	Odd  Category = 1
)

// Deriver - rule that maps identity bytes to a category
//
// implementations must be pure: the same bytes always give the same
// category
type Deriver interface {
	Derive(id []byte) Category
}

// DeriverFunc - adapt an ordinary function to the Deriver interface
type DeriverFunc func(id []byte) Category

// Derive - call f(id)
func (f DeriverFunc) Derive(id []byte) Category {
	return f(id)
}

// Parity - even length gives Even, odd length gives Odd
var Parity Deriver = DeriverFunc(func(id []byte) Category {
	if len(id)%2 == 0 {
		return Even
	}
	return Odd
})

// FromByte - convert a stored byte back to a category
func FromByte(b byte) (Category, error) {
	switch Category(b) {
	case Even, Odd:
		return Category(b), nil
	default:
		return 0, fault.ErrInvalidCategory
	}
}

// String - text name of the category
func (c Category) String() string {
	switch c {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "*unknown*"
	}
}

// MarshalText - convert category to its text name
func (c Category) MarshalText() ([]byte, error) {
	switch c {
	case Even, Odd:
		return []byte(c.String()), nil
	default:
		return nil, fault.ErrInvalidCategory
	}
}

// UnmarshalText - convert text name to a category
func (c *Category) UnmarshalText(s []byte) error {
	switch string(s) {
	case "even":
		*c = Even
	case "odd":
		*c = Odd
	default:
		return fault.ErrInvalidCategory
	}
	return nil
}

// MarshalJSON - category as a JSON string
func (c Category) MarshalJSON() ([]byte, error) {
	s, err := c.MarshalText()
	if nil != err {
		return nil, err
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON - category from a JSON string
func (c *Category) UnmarshalJSON(s []byte) error {
	str := ""
	err := json.Unmarshal(s, &str)
	if nil != err {
		return err
	}
	return c.UnmarshalText([]byte(str))
}
