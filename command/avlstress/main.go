// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/stress"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	processes := background.Processes{}

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		delay := time.Duration(theConfiguration.StatsInterval) * time.Second
		processes = append(processes, newMemstats(delay))
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// turn Signals into a shutdown of the workers
	shutdown := make(chan struct{})
	done := make(chan struct{})
	defer close(done)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
				fmt.Printf("\nshutting down…\n")
			}
			close(shutdown)
		case <-done:
		}
	}()

	printJson("configuration", theConfiguration.Stress, verbose)

	reporter := stress.NewLogReporter(logger.New("stress"))
	totals, err := stress.Run(&theConfiguration.Stress, reporter, logger.New("stress"), shutdown)

	printJson("totals", totals, !quiet)

	if nil != err {
		log.Errorf("stress failed: %s  seed: %d", err, totals.Seed)
		exitwithstatus.Message("%s: stress failed: %s  (replay with seed: %d)", program, err, totals.Seed)
	}

	log.Info("shutting down…")
}
