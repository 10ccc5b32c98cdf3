// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/metrics"
	"github.com/bitmark-inc/ledgerd/publish"
	"github.com/bitmark-inc/ledgerd/rpc/listeners"
	"github.com/bitmark-inc/ledgerd/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublicKeyFile  = "publish.public"
	defaultPrivateKeyFile = "publish.private"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "ledger.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 10
	defaultOwnerCapacity = 5
	defaultEventQueue    = 1000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// GenesisType - one initial balance
type GenesisType struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount"`
}

// LedgerType - ledger parameters
type LedgerType struct {
	Name             string        `gluamapper:"name" json:"name"`
	Symbol           string        `gluamapper:"symbol" json:"symbol"`
	OwnerCapacity    int           `gluamapper:"owner_capacity" json:"owner_capacity"`
	IdentifierLength int           `gluamapper:"identifier_length" json:"identifier_length"`
	BeaconSeed       string        `gluamapper:"beacon_seed" json:"-"`
	EventQueue       int           `gluamapper:"event_queue" json:"event_queue"`
	Genesis          []GenesisType `gluamapper:"genesis" json:"genesis"`
}

// Configuration - the complete daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Ledger        LedgerType   `gluamapper:"ledger" json:"ledger"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Metrics    metrics.Configuration      `gluamapper:"metrics" json:"metrics"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// Get - read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Ledger: LedgerType{
			OwnerCapacity: defaultOwnerCapacity,
			EventQueue:    defaultEventQueue,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublicKeyFile,
			PrivateKey: defaultPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if "" == options.Ledger.BeaconSeed {
		return nil, fault.ErrMissingBeaconSeed
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// check the genesis accounts early
	if _, err := options.Allocations(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// Allocations - decoded genesis list
func (options *Configuration) Allocations() ([]ledger.Allocation, error) {
	allocations := make([]ledger.Allocation, 0, len(options.Ledger.Genesis))
	for _, g := range options.Ledger.Genesis {
		a, err := account.FromBase58(g.Account)
		if nil != err {
			return nil, fmt.Errorf("genesis account: %q  error: %s", g.Account, err)
		}
		allocations = append(allocations, ledger.Allocation{
			Account: a,
			Amount:  g.Amount,
		})
	}
	return allocations, nil
}

// LedgerConfiguration - parameters for the ledger service
func (options *Configuration) LedgerConfiguration() ledger.Configuration {
	return ledger.Configuration{
		Name:             options.Ledger.Name,
		Symbol:           options.Ledger.Symbol,
		IdentifierLength: options.Ledger.IdentifierLength,
		OwnerCapacity:    options.Ledger.OwnerCapacity,
	}
}
