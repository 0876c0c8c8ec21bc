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
package bl616

//go:generate go-bindata -pkg bl616 -nocompress -modtime 1 -mode 420 data/

import (
	"github.com/juju/errors"

	"github.com/bouffalo-tools/blflash/common/blimage"
)

const (
	// XIP flash window in the address space.
	romStart = 0xa0000000
	romEnd   = 0xa0800000

	fwImgStart = 0x1000
)

// Chip is the BL616 profile. Its ROM answers the v2 boot-info layout and
// its boards boot the firmware image directly, without a boot2 stage or
// on-flash partition tables.
type Chip struct{}

func New() *Chip {
	return &Chip{}
}

func (c *Chip) Target() string {
	return "bl616"
}

func (c *Chip) EflashLoader() []byte {
	return MustAsset("data/eflash_loader.bin")
}

func (c *Chip) DefaultPartitionCfg() []byte {
	return nil
}

func (c *Chip) DefaultBootHeaderCfg() []byte {
	return MustAsset("data/efuse_bootheader_cfg.conf")
}

func (c *Chip) DefaultRoParams() []byte {
	return nil
}

func (c *Chip) FlashSegment(cs blimage.CodeSegment) *blimage.RomSegment {
	if cs.Addr < romStart || cs.Addr >= romEnd {
		return nil
	}
	return &blimage.RomSegment{Addr: cs.Addr - romStart, Data: cs.Data}
}

// WithBoot2 degenerates to the boot2-less layout on this chip; partition
// and read-only params inputs are accepted for interface symmetry but the
// device expects only the headered firmware at 0x0.
func (c *Chip) WithBoot2(partitionCfg *blimage.PartitionCfg, bootHeaderCfg *blimage.BootHeaderCfg, roParams, fw []byte) ([]blimage.RomSegment, error) {
	seg, err := c.MakeSegment(bootHeaderCfg, fw)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return []blimage.RomSegment{*seg}, nil
}

func (c *Chip) MakeSegment(bootHeaderCfg *blimage.BootHeaderCfg, fw []byte) (*blimage.RomSegment, error) {
	img, err := bootHeaderCfg.MakeImage(fwImgStart, fw)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &blimage.RomSegment{Addr: 0x0, Data: img}, nil
}
