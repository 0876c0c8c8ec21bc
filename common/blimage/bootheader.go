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
package blimage

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"hash/crc32"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

// Boot header binary layout, 176 bytes total:
//
//	0   magic          u32  ("BFNP")
//	4   revision       u32
//	8   flash cfg      magic u32 ("FCFG") + 84 bytes + crc32
//	100 clk cfg        magic u32 ("PCFG") + 8 bytes + crc32
//	116 boot cfg       u32
//	120 img len        u32
//	124 boot entry     u32
//	128 img start      u32
//	132 hash           [32]byte (SHA-256 of the image)
//	164 rsvd           2 x u32
//	172 crc32          u32 (over the preceding 172 bytes)
const (
	BootHeaderLen = 176

	bootHeaderMagic = 0x504e4642 // "BFNP"
	flashCfgMagic   = 0x47464346 // "FCFG"
	clkCfgMagic     = 0x47464350 // "PCFG"

	flashCfgLen = 84
	clkCfgLen   = 8
)

// BootHeaderCfgFile mirrors the layout of efuse_bootheader_cfg.conf. The
// efuse section, if present, is ignored: efuse programming is not part of
// the serial protocol.
type BootHeaderCfgFile struct {
	BootHeaderCfg BootHeaderCfg `toml:"BOOTHEADER_CFG"`
}

// BootHeaderCfg carries the configurable fields of the boot header. Keys not
// listed here are accepted and ignored so the stock Bouffalo config files
// parse unmodified.
type BootHeaderCfg struct {
	MagicCode     uint32 `toml:"magic_code"`
	Revision      uint32 `toml:"revision"`
	FlashMagic    uint32 `toml:"flashcfg_magic_code"`
	IoMode        uint8  `toml:"io_mode"`
	ContReadSupp  uint8  `toml:"cont_read_support"`
	ClkDelay      uint8  `toml:"clk_delay"`
	ClkInvert     uint8  `toml:"clk_invert"`
	ClkMagic      uint32 `toml:"clkcfg_magic_code"`
	XtalType      uint8  `toml:"xtal_type"`
	PllClk        uint8  `toml:"pll_clk"`
	HclkDiv       uint8  `toml:"hclk_div"`
	BclkDiv       uint8  `toml:"bclk_div"`
	FlashClkType  uint8  `toml:"flash_clk_type"`
	FlashClkDiv   uint8  `toml:"flash_clk_div"`
	BootCfg       uint32 `toml:"bootcfg"`
	BootEntry     uint32 `toml:"boot_entry"`
	ImgStart      uint32 `toml:"img_start"`
	CrcIgnoreBits uint32 `toml:"crc_ignore"`
}

func ParseBootHeaderCfg(data []byte) (*BootHeaderCfg, error) {
	var f BootHeaderCfgFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Annotatef(err, "invalid boot header config")
	}
	return &f.BootHeaderCfg, nil
}

// MakeImage builds a flashable image: the boot header describing img,
// padding up to imgStart, then img itself. imgStart is the in-image offset
// the ROM will load the payload from and must leave room for the header.
func (c *BootHeaderCfg) MakeImage(imgStart uint32, img []byte) ([]byte, error) {
	if imgStart < BootHeaderLen {
		return nil, errors.Errorf("image start 0x%x overlaps the boot header", imgStart)
	}
	hdr, err := c.makeHeader(imgStart, img)
	if err != nil {
		return nil, errors.Trace(err)
	}
	out := make([]byte, imgStart, int(imgStart)+len(img))
	copy(out, hdr)
	for i := BootHeaderLen; i < int(imgStart); i++ {
		out[i] = 0xff // erased-flash filler
	}
	return append(out, img...), nil
}

func (c *BootHeaderCfg) makeHeader(imgStart uint32, img []byte) ([]byte, error) {
	magic := c.MagicCode
	if magic == 0 {
		magic = bootHeaderMagic
	}
	fmagic := c.FlashMagic
	if fmagic == 0 {
		fmagic = flashCfgMagic
	}
	cmagic := c.ClkMagic
	if cmagic == 0 {
		cmagic = clkCfgMagic
	}

	buf := new(bytes.Buffer)
	le := binary.LittleEndian
	binary.Write(buf, le, magic)
	binary.Write(buf, le, c.Revision)

	fcfg := [flashCfgLen]byte{0: c.IoMode, 1: c.ContReadSupp, 2: c.ClkDelay, 3: c.ClkInvert}
	binary.Write(buf, le, fmagic)
	buf.Write(fcfg[:])
	binary.Write(buf, le, crc32.ChecksumIEEE(fcfg[:]))

	ccfg := [clkCfgLen]byte{
		0: c.XtalType, 1: c.PllClk, 2: c.HclkDiv,
		3: c.BclkDiv, 4: c.FlashClkType, 5: c.FlashClkDiv,
	}
	binary.Write(buf, le, cmagic)
	buf.Write(ccfg[:])
	binary.Write(buf, le, crc32.ChecksumIEEE(ccfg[:]))

	binary.Write(buf, le, c.BootCfg)
	binary.Write(buf, le, uint32(len(img)))
	binary.Write(buf, le, c.BootEntry)
	binary.Write(buf, le, imgStart)

	hash := sha256.Sum256(img)
	buf.Write(hash[:])

	binary.Write(buf, le, uint32(0))
	binary.Write(buf, le, uint32(0))
	binary.Write(buf, le, crc32.ChecksumIEEE(buf.Bytes()))

	if buf.Len() != BootHeaderLen {
		return nil, errors.Errorf("boot header is %d bytes, want %d", buf.Len(), BootHeaderLen)
	}
	return buf.Bytes(), nil
}
