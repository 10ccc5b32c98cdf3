// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// ledger errors - keep in alphabetic order
var (
	ErrCapacityExceeded    = LimitError("owner capacity exceeded")
	ErrDuplicateAsset      = ExistsError("duplicate asset")
	ErrInsufficientBalance = InvalidError("insufficient balance")
	ErrNotFound            = NotFoundError("asset not found")
	ErrNotOwner            = InvalidError("not owner")
	ErrOverflow            = ArithmeticError("overflow")
	ErrSelfTransfer        = InvalidError("transfer to self")
	ErrSupplyMismatch      = RecordError("total supply does not match balances")
	ErrUnderflow           = ArithmeticError("underflow")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrCertificateFileExists    = ExistsError("certificate file already exists")
	ErrChecksumMismatch         = ProcessError("checksum mismatch")
	ErrCorruptIndex             = RecordError("owner index is corrupt")
	ErrCorruptRecord            = RecordError("asset record is corrupt")
	ErrDatabaseVersion          = RecordError("database version is not supported")
	ErrInvalidCategory          = InvalidError("invalid category")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidIdentifier        = InvalidError("invalid asset identifier")
	ErrInvalidIdentifierLength  = InvalidError("invalid asset identifier length")
	ErrInvalidIpAddress         = InvalidError("invalid IP address")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidOwnerCapacity     = InvalidError("invalid owner capacity")
	ErrInvalidPortNumber        = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile    = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile     = InvalidError("invalid public key file")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists     = ExistsError("key file already exists")
	ErrMissingBeaconSeed        = InvalidError("missing beacon seed")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotPublicKey             = InvalidError("not public key")
	ErrRateLimiting             = LimitError("rate limiting")
	ErrTransactionAlreadyInUse  = ProcessError("transaction already in use")
	ErrTransactionNotStarted    = ProcessError("transaction not started")
	ErrUnsupportedConfiguration = InvalidError("configuration is not supported")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e ArithmeticError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LimitError) Error() string      { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool { _, ok := e.(ArithmeticError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool      { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
