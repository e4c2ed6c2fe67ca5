// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultCount = 16
	defaultRange = 10
	defaultSeed  = 1

	defaultLogFile  = "avl-demo.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "range", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'L'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 || 0 != len(arguments) {
		usage(program)
		return
	}

	count := intOption(program, options, "count", defaultCount)
	limit := intOption(program, options, "range", defaultRange)
	seed := intOption(program, options, "seed", defaultSeed)
	if count < 0 {
		exitwithstatus.Message("%s: count: %d  error: %s", program, count, fault.ErrInvalidCount)
	}
	if limit <= 0 {
		exitwithstatus.Message("%s: range: %d  error: %s", program, limit, fault.ErrInvalidRange)
	}

	levels := map[string]string{
		logger.DefaultTag: "critical",
	}
	if len(options["verbose"]) > 0 {
		levels[logger.DefaultTag] = "debug"
	}

	logDirectory := os.TempDir()
	if len(options["log-directory"]) > 0 {
		logDirectory = options["log-directory"][0]
	}

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      defaultLogFile,
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Console:   len(options["verbose"]) > 0,
		Levels:    levels,
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Infof("count: %d  range: %d  seed: %d", count, limit, seed)

	rnd := rand.New(rand.NewSource(int64(seed)))
	values := make([]int, count)
	for i := range values {
		values[i] = rnd.Intn(limit)
	}

	released := exercise(os.Stdout, log, values, len(options["print"]) > 0)
	if released != count {
		fault.Critical("release count mismatch")
		fault.Criticalf("released: %d  expected: %d", released, count)
		exitwithstatus.Message("%s: released: %d of %d values", program, released, count)
	}
	log.Info("finished")
}

// fetch a single integer option
func intOption(program string, options map[string][]string, name string, defaultValue int) int {
	values := options[name]
	switch len(values) {
	case 0:
		return defaultValue
	case 1:
	default:
		exitwithstatus.Message("%s: only one %s option is allowed, %d were detected", program, name, len(values))
	}
	n, err := strconv.Atoi(values[0])
	if nil != err {
		exitwithstatus.Message("%s: %s: %q is not a number", program, name, values[0])
	}
	return n
}

func usage(program string) {
	fmt.Printf("usage: %s [options]\n", program)
	fmt.Printf("       --help                    -h            this message\n")
	fmt.Printf("       --verbose                 -v            log to console\n")
	fmt.Printf("       --version                 -V            show version\n")
	fmt.Printf("       --count=N                 -n N          number of values [%d]\n", defaultCount)
	fmt.Printf("       --range=M                 -r M          values are in [0, M) [%d]\n", defaultRange)
	fmt.Printf("       --seed=S                  -s S          random seed [%d]\n", defaultSeed)
	fmt.Printf("       --print                   -p            draw the tree after each change\n")
	fmt.Printf("       --log-directory=DIR       -L DIR        log file directory [%s]\n", os.TempDir())
}
