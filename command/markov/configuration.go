// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/markov"
	"github.com/bitmark-inc/avlset/util"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "markov.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// Configuration - settings for a run, flags override these
type Configuration struct {
	Length    int                  `gluamapper:"length" json:"length"`
	Initial   string               `gluamapper:"initial" json:"initial"`
	Delimiter string               `gluamapper:"delimiter" json:"delimiter"`
	Wrap      bool                 `gluamapper:"wrap" json:"wrap"`
	Width     int                  `gluamapper:"width" json:"width"`
	Seed      int                  `gluamapper:"seed" json:"seed"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults used with or without a configuration file
func defaultConfiguration(logDirectory string) *Configuration {
	return &Configuration{
		Length:    markov.DefaultLength,
		Delimiter: markov.DefaultDelimiters,
		Width:     markov.DefaultWidth,
		Logging: logger.Configuration{
			Directory: logDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with logging to the
// temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {
	if "" == configurationFileName {
		options := defaultConfiguration(os.TempDir())
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultLogDirectory)
	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// log file must be a plain name inside the log directory
	if !util.IsPlainName(options.Logging.File) {
		return nil, fault.ErrLogFileNotPlainName
	}

	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}

	return options, nil
}

// reject values that could never produce output
func (c *Configuration) validate() error {
	if c.Length < 0 {
		return fault.ErrInvalidLength
	}
	if "" == c.Delimiter {
		return fault.ErrEmptyDelimiter
	}
	if c.Width <= 0 {
		c.Width = markov.DefaultWidth
	}
	return nil
}

// generation options for this configuration
func (c *Configuration) generateOptions() markov.GenerateOptions {
	width := 0
	if c.Wrap {
		width = c.Width
	}
	return markov.GenerateOptions{
		Length:    c.Length,
		Initial:   c.Initial,
		Separator: c.Delimiter,
		Width:     width,
	}
}
