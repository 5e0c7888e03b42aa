// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/stress"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultStatsInterval = 60 // seconds

	defaultRounds     = 10
	defaultInsertions = 1000
	defaultErasures   = 1000
	defaultCursors    = 1000
	defaultMaxSkip    = 500
	defaultKeyRange   = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "avlstress.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"stress":          "info",
		"memory":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	StatsInterval int                  `gluamapper:"stats_interval" json:"stats_interval"`
	Stress        stress.Configuration `gluamapper:"stress" json:"stress"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrConfigurationMissing
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		StatsInterval: defaultStatsInterval,

		Stress: stress.Configuration{
			Rounds:     defaultRounds,
			Workers:    runtime.NumCPU(),
			Insertions: defaultInsertions,
			Erasures:   defaultErasures,
			Cursors:    defaultCursors,
			MaxSkip:    defaultMaxSkip,
			KeyRange:   defaultKeyRange,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	variables := map[string]string{
		"directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if err := options.Stress.Validate(); nil != err {
		return nil, err
	}

	if options.StatsInterval <= 0 {
		options.StatsInterval = defaultStatsInterval
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name, it lives in the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
