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
package bl

import (
	"fmt"
	"strings"

	"github.com/bouffalo-tools/blflash/common/blimage"
)

type ChipType int

const (
	ChipBL602 ChipType = iota
	ChipBL616
)

func (ct ChipType) String() string {
	switch ct {
	case ChipBL602:
		return "BL602"
	case ChipBL616:
		return "BL616"
	default:
		return fmt.Sprintf("???(%d)", int(ct))
	}
}

// ParseChipType maps a chip name to its type. Unrecognized names fall back
// to BL602 rather than failing; the boards in the wild overwhelmingly carry
// it and the protocol probe will catch a genuine mismatch anyway.
func ParseChipType(s string) ChipType {
	switch strings.ToLower(s) {
	case "bl616":
		return ChipBL616
	default:
		return ChipBL602
	}
}

// BootInfoV2 reports whether the chip's boot ROM answers the boot-info
// request with the v2 layout. BL602 speaks v1 and is widened by the driver;
// do not unify the two without device-side evidence.
func (ct ChipType) BootInfoV2() bool {
	return ct == ChipBL616
}

// FlashOpts carries the link parameters for one flashing session.
type FlashOpts struct {
	Port string
	// ROMBaudRate is the speed the boot ROM auto-bauds at.
	ROMBaudRate uint
	// FlashBaudRate is the speed used after the eflash loader is running.
	// 0 means keep the ROM speed.
	FlashBaudRate uint
	// ResetPin and BootPin are pin expressions: "rts", "dtr" or "null",
	// optionally prefixed with '!' to invert the level.
	ResetPin string
	BootPin  string
	// Force writes segments even when the on-flash hash already matches.
	Force bool
}

// Chip is one member of the closed set of supported chip profiles.
type Chip interface {
	// Target returns the chip identifier used in logs.
	Target() string
	// EflashLoader returns the RAM-resident second-stage programmer blob.
	EflashLoader() []byte
	// FlashSegment maps an ELF code segment into the chip's flash window,
	// or returns nil for segments that do not belong on flash.
	FlashSegment(cs blimage.CodeSegment) *blimage.RomSegment
	// WithBoot2 composes the full set of flash segments for the boot2
	// second-stage bootloader layout.
	WithBoot2(partitionCfg *blimage.PartitionCfg, bootHeaderCfg *blimage.BootHeaderCfg, roParams, fw []byte) ([]blimage.RomSegment, error)
	// MakeSegment wraps a raw firmware image for a boot2-less layout.
	MakeSegment(bootHeaderCfg *blimage.BootHeaderCfg, fw []byte) (*blimage.RomSegment, error)
	// Built-in defaults for the boot2 layout inputs.
	DefaultPartitionCfg() []byte
	DefaultBootHeaderCfg() []byte
	DefaultRoParams() []byte
}
