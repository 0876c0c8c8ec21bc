//
// Copyright (c) 2021-2024 The blflash Authors
// All rights reserved
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
//
package main

import (
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFlagsFromEnv(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	port := fs.String("port", "auto", "")
	baud := fs.Uint("baud-rate", 1000000, "")
	chip := fs.String("chip", "bl602", "")
	require.NoError(t, fs.Parse([]string{"--chip", "bl616"}))

	t.Setenv("BLFLASH_PORT", "/dev/ttyUSB7")
	t.Setenv("BLFLASH_BAUD_RATE", "2000000")
	// A flag set on the command line wins over the environment.
	t.Setenv("BLFLASH_CHIP", "bl602")

	setFlagsFromEnv(fs, "BLFLASH_")
	assert.Equal(t, "/dev/ttyUSB7", *port)
	assert.Equal(t, uint(2000000), *baud)
	assert.Equal(t, "bl616", *chip)
}

func TestGetCommand(t *testing.T) {
	for _, name := range []string{"flash", "check", "dump", "reset"} {
		assert.NotNilf(t, getCommand(name), "command %s", name)
	}
	assert.Nil(t, getCommand("build"))
}
