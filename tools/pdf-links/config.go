// seehuhn.de/go/pdfnav - navigation support for PDF viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/pdfnav"
)

// config is the contents of the optional configuration file.
//
// Example:
//
//	[links]
//	external = true
//	rel = "noopener"
//	target = "_top"
//
//	[check]
//	workers = 8
type config struct {
	Links linkConfig  `toml:"links"`
	Check checkConfig `toml:"check"`
}

type linkConfig struct {
	// External can be set to false to turn off external links.
	External *bool  `toml:"external"`
	Rel      string `toml:"rel"`
	Target   string `toml:"target"`
}

type checkConfig struct {
	// Workers is the maximal number of links resolved concurrently.
	Workers int `toml:"workers"`
}

const defaultWorkers = 4

// loadConfig reads a configuration file.  An empty file name gives the
// default configuration.
func loadConfig(fname string) (*config, error) {
	cfg := &config{}
	if fname == "" {
		cfg.Check.Workers = defaultWorkers
		return cfg, nil
	}

	md, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%s: unknown keys %s", fname, strings.Join(keys, ", "))
	}

	if cfg.Check.Workers < 0 {
		return nil, fmt.Errorf("%s: %w", fname, errInvalidWorkers)
	} else if cfg.Check.Workers == 0 {
		cfg.Check.Workers = defaultWorkers
	}
	return cfg, nil
}

// options converts the link settings to options for a LinkService.
func (cfg *config) options() *pdfnav.Options {
	opt := &pdfnav.Options{
		ExternalLinkRel:    cfg.Links.Rel,
		ExternalLinkTarget: cfg.Links.Target,
	}
	if cfg.Links.External != nil {
		opt.ExternalLinkDisabled = !*cfg.Links.External
	}
	return opt
}

var errInvalidWorkers = errors.New("number of workers must not be negative")
