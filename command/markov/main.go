// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/markov"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type metadata struct {
	config *Configuration
	stats  bool
	json   bool
	r      io.Reader
	w      io.Writer
	e      io.Writer
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "markov"
	app.Usage = "generate text from the word transitions of standard input"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.IntFlag{
			Name:  "length, l",
			Value: markov.DefaultLength,
			Usage: " number of words to generate `N`",
		},
		cli.StringFlag{
			Name:  "initial, i",
			Value: "",
			Usage: " first word of the sequence `WORD`",
		},
		cli.BoolFlag{
			Name:  "stats, t",
			Usage: " print the transition statistics before the generated text",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " print only the transition statistics, as JSON",
		},
		cli.StringFlag{
			Name:  "delimiter, d",
			Value: markov.DefaultDelimiters,
			Usage: " word delimiter characters `STRING`",
		},
		cli.BoolFlag{
			Name:  "wrap, w",
			Usage: " wrap output longer than 80 characters",
		},
		cli.IntFlag{
			Name:  "seed, s",
			Value: 0,
			Usage: " random seed, 0 uses the current time `N`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log to the console",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// flags given on the command line override the configuration
func applyFlags(c *cli.Context, config *Configuration) {
	if c.IsSet("length") {
		config.Length = c.Int("length")
	}
	if c.IsSet("initial") {
		config.Initial = c.String("initial")
	}
	if c.IsSet("delimiter") {
		config.Delimiter = c.String("delimiter")
	}
	if c.IsSet("wrap") {
		config.Wrap = c.Bool("wrap")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int("seed")
	}
	if c.Bool("verbose") {
		config.Logging.Console = true
	}
}

func run(c *cli.Context) error {
	config, err := getConfiguration(c.String("config"))
	if nil != err {
		return err
	}
	applyFlags(c, config)
	if err := config.validate(); nil != err {
		return err
	}

	if err = logger.Initialise(config.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	m := &metadata{
		config: config,
		stats:  c.Bool("stats"),
		json:   c.Bool("json"),
		r:      os.Stdin,
		w:      c.App.Writer,
		e:      c.App.ErrWriter,
	}

	seed := int64(config.Seed)
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	return process(m, logger.New("markov"), rand.New(rand.NewSource(seed)))
}

// build the table then print the requested output
func process(m *metadata, log *logger.L, rnd markov.RandomSource) error {
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", m.config)

	table := markov.New(logger.New("table"))
	defer table.Destroy()

	if err := table.Read(m.r, m.config.Delimiter); nil != err {
		log.Errorf("read error: %s", err)
		return err
	}

	// JSON output is the statistics alone
	if m.json {
		return printJson(m.w, table.Statistics())
	}
	if m.stats {
		if err := table.PrintStatistics(m.w); nil != err {
			return err
		}
	}

	err := table.Generate(m.w, m.config.generateOptions(), rnd)
	if fault.ErrInitialWordNotFound == err {
		fmt.Fprintf(m.e, "initial word: %q not found in dictionary\n", m.config.Initial)
	}
	return err
}
