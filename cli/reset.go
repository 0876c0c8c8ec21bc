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

	"github.com/bouffalo-tools/blflash/cli/devutil"
	"github.com/bouffalo-tools/blflash/cli/flags"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn"
	"github.com/bouffalo-tools/blflash/cli/ourutil"
)

func resetCmd(ctx context.Context) error {
	port, err := devutil.GetPort()
	if err != nil {
		return errors.Trace(err)
	}
	c, err := conn.Open(port, *flags.InitialBaudRate, *flags.ResetPin, *flags.BootPin)
	if err != nil {
		return errors.Trace(err)
	}
	defer c.Close()

	if *flags.Loader {
		err = c.ResetToFlash()
	} else {
		err = c.Reset()
	}
	if err != nil {
		return errors.Trace(err)
	}
	ourutil.Successf("Reset done")
	return nil
}
