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
	"context"
	"os"
	"strconv"

	"github.com/juju/errors"
	flag "github.com/spf13/pflag"

	"github.com/bouffalo-tools/blflash/cli/devutil"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/flasher"
	"github.com/bouffalo-tools/blflash/cli/ourutil"
)

const defaultDumpEnd = 0x100000

func dumpCmd(ctx context.Context) error {
	var err error
	var start, end int64 = 0, defaultDumpEnd
	outFile := ""
	args := flag.Args()
	switch len(args) {
	case 2:
		outFile = args[1]
	case 4:
		start, err = strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			return errors.Annotatef(err, "invalid start address")
		}
		end, err = strconv.ParseInt(args[2], 0, 64)
		if err != nil {
			return errors.Annotatef(err, "invalid end address")
		}
		outFile = args[3]
	default:
		return errors.Errorf("usage: dump [start end] <output>")
	}

	ct, chip := chipFromFlags()
	port, err := devutil.GetPort()
	if err != nil {
		return errors.Trace(err)
	}
	f, err := flasher.Connect(ct, chip, flashOptsFromFlags(port))
	if err != nil {
		return errors.Trace(err)
	}
	defer f.Close()

	out := os.Stdout
	if outFile != "-" {
		out, err = os.Create(outFile)
		if err != nil {
			return errors.Annotatef(err, "failed to create %s", outFile)
		}
		defer out.Close()
	}
	if err := f.DumpFlash(uint32(start), uint32(end), out); err != nil {
		return errors.Trace(err)
	}
	if outFile != "-" {
		ourutil.Successf("Wrote %s", outFile)
	}
	return nil
}
