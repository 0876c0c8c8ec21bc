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

// Package rom_client drives the first-stage bootloader burned into the
// chip's mask ROM. Its only real job is to get the eflash loader into RAM
// and running: boot header, segment header, segment data, check, run.
package rom_client

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/bouffalo-tools/blflash/cli/flash/bl"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn"
)

const (
	BootHeaderLen    = 176
	SegmentHeaderLen = 16
	// The ROM accepts at most this much segment data per command.
	segmentChunkSize = 4000

	bootInfoV1Len = 22
	bootInfoV2Len = 26
)

var (
	cmdBootInfoV1 = conn.CmdDesc{ID: 0x10, Name: "get_boot_info", Resp: conn.RespFixed, FixedLen: bootInfoV1Len}
	cmdBootInfoV2 = conn.CmdDesc{ID: 0x10, Name: "get_boot_info", Resp: conn.RespFixed, FixedLen: bootInfoV2Len}

	cmdLoadBootHeader    = conn.CmdDesc{ID: 0x11, Name: "load_boot_header", Resp: conn.RespNone}
	cmdLoadSegmentHeader = conn.CmdDesc{ID: 0x17, Name: "load_segment_header", Resp: conn.RespVar}
	cmdLoadSegmentData   = conn.CmdDesc{ID: 0x18, Name: "load_segment_data", Resp: conn.RespNone}
	cmdCheckImage        = conn.CmdDesc{ID: 0x19, Name: "check_image", Resp: conn.RespNone}
	cmdRunImage          = conn.CmdDesc{ID: 0x1a, Name: "run_image", Resp: conn.RespNone}
)

// BootInfoV2 is the boot ROM's self-description. BL602 answers the shorter
// v1 layout, which is widened here with zeroed Extra bytes so everything
// downstream sees one shape.
type BootInfoV2 struct {
	Len            uint16
	BootROMVersion uint32
	OTPInfo        [16]byte
	Extra          [4]byte
}

// ROMClient talks to the boot ROM over an established connection.
type ROMClient struct {
	c  *conn.Conn
	ct bl.ChipType
}

func New(c *conn.Conn, ct bl.ChipType) *ROMClient {
	return &ROMClient{c: c, ct: ct}
}

// GetBootInfo queries the ROM, requesting the layout variant the chip's
// ROM actually speaks.
func (rc *ROMClient) GetBootInfo() (*BootInfoV2, error) {
	desc := cmdBootInfoV1
	if rc.ct.BootInfoV2() {
		desc = cmdBootInfoV2
	}
	payload, err := rc.c.Command(desc, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}
	bi := &BootInfoV2{}
	r := bytes.NewReader(payload)
	binary.Read(r, binary.LittleEndian, &bi.Len)
	binary.Read(r, binary.LittleEndian, &bi.BootROMVersion)
	r.Read(bi.OTPInfo[:])
	if rc.ct.BootInfoV2() {
		r.Read(bi.Extra[:])
	}
	return bi, nil
}

// LoadBootHeader sends the loader image's 176-byte boot header. A short
// source is a hard error: the ROM would reject a truncated header anyway.
func (rc *ROMClient) LoadBootHeader(r io.Reader) error {
	hdr := make([]byte, BootHeaderLen)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return errors.Annotatef(err, "failed to read %d header bytes", BootHeaderLen)
	}
	_, err := rc.c.Command(cmdLoadBootHeader, hdr)
	return errors.Trace(err)
}

// LoadSegmentHeader sends the 16-byte segment header. The ROM echoes the
// header it accepted; a mismatch is only warned because some revisions
// normalize fields in the echo.
func (rc *ROMClient) LoadSegmentHeader(r io.Reader) error {
	hdr := make([]byte, SegmentHeaderLen)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return errors.Annotatef(err, "failed to read %d segment header bytes", SegmentHeaderLen)
	}
	echo, err := rc.c.Command(cmdLoadSegmentHeader, hdr)
	if err != nil {
		return errors.Trace(err)
	}
	if !bytes.Equal(echo, hdr) {
		glog.Warningf("segment header mismatch: sent %s, ROM accepted %s",
			hex.EncodeToString(hdr), hex.EncodeToString(echo))
	}
	return nil
}

// LoadSegmentData sends the next chunk of segment data, up to 4000 bytes.
// It returns the number of bytes consumed from r; zero means the source is
// exhausted and no command was issued.
func (rc *ROMClient) LoadSegmentData(r io.Reader) (int, error) {
	buf := make([]byte, segmentChunkSize)
	n, err := io.ReadFull(r, buf)
	if err == io.EOF {
		return 0, nil
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, errors.Annotatef(err, "failed to read segment data")
	}
	if n == 0 {
		return 0, nil
	}
	if _, err := rc.c.Command(cmdLoadSegmentData, buf[:n]); err != nil {
		return 0, errors.Trace(err)
	}
	return n, nil
}

// CheckImage asks the ROM to validate everything loaded so far.
func (rc *ROMClient) CheckImage() error {
	_, err := rc.c.Command(cmdCheckImage, nil)
	return errors.Trace(err)
}

// RunImage jumps into the uploaded code. After this the ROM is gone; no
// command may be issued until the second stage has been handshaken at its
// own baud rate.
func (rc *ROMClient) RunImage() error {
	_, err := rc.c.Command(cmdRunImage, nil)
	return errors.Trace(err)
}
