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

	"github.com/juju/errors"
	flag "github.com/spf13/pflag"

	"github.com/bouffalo-tools/blflash/cli/devutil"
	"github.com/bouffalo-tools/blflash/cli/flags"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/flasher"
	"github.com/bouffalo-tools/blflash/cli/ourutil"
)

func flashCmd(ctx context.Context) error {
	args := flag.Args()
	if len(args) != 2 {
		return errors.Errorf("usage: flash <image>")
	}
	ct, chip := chipFromFlags()
	image, err := readImage(chip, args[1])
	if err != nil {
		return errors.Trace(err)
	}
	segments, err := getSegments(chip, image)
	if err != nil {
		return errors.Trace(err)
	}

	port, err := devutil.GetPort()
	if err != nil {
		return errors.Trace(err)
	}
	f, err := flasher.Connect(ct, chip, flashOptsFromFlags(port))
	if err != nil {
		return errors.Trace(err)
	}
	defer f.Close()

	if err := f.LoadSegments(*flags.Force, segments); err != nil {
		return errors.Trace(err)
	}
	if err := f.Reset(); err != nil {
		return errors.Trace(err)
	}
	ourutil.Successf("All done!")
	return nil
}
