// This file is part of lox - https://github.com/db47h/lox
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// defaultConfigFile is loaded when present in the working directory and no
// -config flag is given.
const defaultConfigFile = "lox.toml"

// config holds the settings that can be set from a TOML configuration file.
// Command line flags take precedence.
type config struct {
	Trace     bool   `toml:"trace"`
	Unchecked bool   `toml:"unchecked"`
	Verbosity int    `toml:"verbosity"`
	LogFile   string `toml:"log-file"`
}

// loadConfig decodes the named configuration file into cfg. If name is empty,
// defaultConfigFile is tried instead and silently ignored if it does not
// exist. It returns the name of the file actually loaded, if any.
func loadConfig(name string, cfg *config) (string, error) {
	optional := name == ""
	if optional {
		name = defaultConfigFile
	}
	data, err := os.ReadFile(name)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "cannot read config")
	}
	if err = toml.Unmarshal(data, cfg); err != nil {
		return "", errors.Wrapf(err, "parse error in %s", name)
	}
	return name, nil
}
