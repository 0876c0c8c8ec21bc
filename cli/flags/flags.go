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
package flags

import (
	flag "github.com/spf13/pflag"
)

var (
	Port = flag.String("port", "auto", "Serial port where the device is connected. "+
		"If set to 'auto', ports on the system will be enumerated and the first will be used.")
	Chip = flag.String("chip", "bl602", "Chip type: bl602 or bl616. "+
		"Unrecognized values fall back to bl602.")
	BaudRate        = flag.Uint("baud-rate", 1000000, "Serial port speed during flashing")
	InitialBaudRate = flag.Uint("initial-baud-rate", 115200, "Serial port speed when talking to the boot ROM")
	ResetPin        = flag.String("reset-pin", "rts", "Control line wired to reset: rts, dtr or null, "+
		"prefix with ! to invert the polarity")
	BootPin = flag.String("boot-pin", "!dtr", "Control line wired to the boot strap pin: rts, dtr or null, "+
		"prefix with ! to invert the polarity")
	Force = flag.Bool("force", false, "Write all segments even if their on-flash hash already matches")

	PartitionCfg  = flag.String("partition-cfg", "", "Path to a partition_cfg TOML file; chip default if empty")
	BootHeaderCfg = flag.String("boot-header-cfg", "", "Path to an efuse_bootheader_cfg file; chip default if empty")
	Dtb           = flag.String("dtb", "", "Path to a ro_params device tree blob; chip default if empty")
	WithoutBoot2  = flag.Bool("without-boot2", false, "Flash a single headered image at 0x0 instead of the boot2 layout")

	Loader = flag.Bool("loader", false, "With the reset command: reset into the ROM loader instead of the application")
)
