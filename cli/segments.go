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
	"os"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/bouffalo-tools/blflash/cli/flags"
	"github.com/bouffalo-tools/blflash/cli/flash/bl"
	"github.com/bouffalo-tools/blflash/cli/flash/bl602"
	"github.com/bouffalo-tools/blflash/cli/flash/bl616"
	"github.com/bouffalo-tools/blflash/common/blimage"
)

func chipFromFlags() (bl.ChipType, bl.Chip) {
	ct := bl.ParseChipType(*flags.Chip)
	switch ct {
	case bl.ChipBL616:
		return ct, bl616.New()
	default:
		return bl.ChipBL602, bl602.New()
	}
}

func flashOptsFromFlags(port string) *bl.FlashOpts {
	return &bl.FlashOpts{
		Port:          port,
		ROMBaudRate:   *flags.InitialBaudRate,
		FlashBaudRate: *flags.BaudRate,
		ResetPin:      *flags.ResetPin,
		BootPin:       *flags.BootPin,
		Force:         *flags.Force,
	}
}

// readImage loads the firmware input and flattens ELF files into the raw
// flash image; anything without the ELF magic is used as-is.
func readImage(chip bl.Chip, fname string) ([]byte, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to read %s", fname)
	}
	if !blimage.IsELF(data) {
		return data, nil
	}
	glog.V(1).Infof("%s is an ELF image", fname)
	fi, err := blimage.NewFirmwareImage(data)
	if err != nil {
		return nil, errors.Trace(err)
	}
	bin, err := fi.ToFlashBin(chip.FlashSegment)
	return bin, errors.Trace(err)
}

func fileOrDefault(fname string, def []byte) ([]byte, error) {
	if fname == "" {
		return def, nil
	}
	data, err := os.ReadFile(fname)
	return data, errors.Annotatef(err, "failed to read %s", fname)
}

// getSegments turns the firmware image into the list of flash segments,
// using either the boot2 layout or a single headered image.
func getSegments(chip bl.Chip, image []byte) ([]blimage.RomSegment, error) {
	bhData, err := fileOrDefault(*flags.BootHeaderCfg, chip.DefaultBootHeaderCfg())
	if err != nil {
		return nil, errors.Trace(err)
	}
	bootHeaderCfg, err := blimage.ParseBootHeaderCfg(bhData)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *flags.WithoutBoot2 {
		seg, err := chip.MakeSegment(bootHeaderCfg, image)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return []blimage.RomSegment{*seg}, nil
	}

	pcData, err := fileOrDefault(*flags.PartitionCfg, chip.DefaultPartitionCfg())
	if err != nil {
		return nil, errors.Trace(err)
	}
	var partitionCfg *blimage.PartitionCfg
	if len(pcData) > 0 {
		if partitionCfg, err = blimage.ParsePartitionCfg(pcData); err != nil {
			return nil, errors.Trace(err)
		}
	}
	roParams, err := fileOrDefault(*flags.Dtb, chip.DefaultRoParams())
	if err != nil {
		return nil, errors.Trace(err)
	}
	segs, err := chip.WithBoot2(partitionCfg, bootHeaderCfg, roParams, image)
	return segs, errors.Trace(err)
}
