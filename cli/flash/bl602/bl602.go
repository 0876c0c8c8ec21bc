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
package bl602

//go:generate go-bindata -pkg bl602 -nocompress -modtime 1 -mode 420 data/

import (
	"github.com/juju/errors"

	"github.com/bouffalo-tools/blflash/common/blimage"
)

const (
	// XIP flash window in the address space.
	romStart = 0x23000000
	romEnd   = 0x23400000

	// In-image payload offsets of the headered boot2 and firmware images.
	boot2ImgStart = 0x2000
	fwImgStart    = 0x1000

	// Flash location of the read-only params blob.
	roParamsAddr = 0x1f8000

	fwPartitionName = "FW"
)

type Chip struct{}

func New() *Chip {
	return &Chip{}
}

func (c *Chip) Target() string {
	return "bl602"
}

func (c *Chip) EflashLoader() []byte {
	return MustAsset("data/eflash_loader_40m.bin")
}

func (c *Chip) DefaultPartitionCfg() []byte {
	return MustAsset("data/partition_cfg_2M.toml")
}

func (c *Chip) DefaultBootHeaderCfg() []byte {
	return MustAsset("data/efuse_bootheader_cfg.conf")
}

func (c *Chip) DefaultRoParams() []byte {
	return MustAsset("data/ro_params.dtb")
}

// FlashSegment maps an ELF code segment into flash: segments inside the XIP
// window become ROM segments at their window offset, everything else (RAM,
// peripherals) is dropped.
func (c *Chip) FlashSegment(cs blimage.CodeSegment) *blimage.RomSegment {
	if cs.Addr < romStart || cs.Addr >= romEnd {
		return nil
	}
	return &blimage.RomSegment{Addr: cs.Addr - romStart, Data: cs.Data}
}

// WithBoot2 composes the standard boot2 flash layout: the headered boot2
// image at 0x0, the partition table at both of its configured locations,
// the headered firmware at the FW partition, and the read-only params blob.
func (c *Chip) WithBoot2(partitionCfg *blimage.PartitionCfg, bootHeaderCfg *blimage.BootHeaderCfg, roParams, fw []byte) ([]blimage.RomSegment, error) {
	pt, err := partitionCfg.ToBytes()
	if err != nil {
		return nil, errors.Trace(err)
	}
	fwEntry := partitionCfg.Entry(fwPartitionName)
	if fwEntry == nil {
		return nil, errors.Errorf("partition config has no %q entry", fwPartitionName)
	}
	boot2Image, err := bootHeaderCfg.MakeImage(boot2ImgStart, MustAsset("data/boot2_image.bin"))
	if err != nil {
		return nil, errors.Annotatef(err, "failed to build boot2 image")
	}
	fwImage, err := bootHeaderCfg.MakeImage(fwImgStart, fw)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to build firmware image")
	}
	return []blimage.RomSegment{
		{Addr: 0x0, Data: boot2Image},
		{Addr: partitionCfg.Table.Address0, Data: pt},
		{Addr: partitionCfg.Table.Address1, Data: pt},
		{Addr: fwEntry.Address0, Data: fwImage},
		{Addr: roParamsAddr, Data: roParams},
	}, nil
}

// MakeSegment wraps fw into a single headered image at 0x0 for boards that
// boot without boot2.
func (c *Chip) MakeSegment(bootHeaderCfg *blimage.BootHeaderCfg, fw []byte) (*blimage.RomSegment, error) {
	img, err := bootHeaderCfg.MakeImage(boot2ImgStart, fw)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &blimage.RomSegment{Addr: 0x0, Data: img}, nil
}
