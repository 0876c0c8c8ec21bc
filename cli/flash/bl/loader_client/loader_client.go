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

// Package loader_client drives the eflash loader, the RAM-resident second
// stage uploaded through the boot ROM. It speaks the same framing at the
// (usually much higher) flash baud rate.
package loader_client

import (
	"encoding/binary"
	"io"

	"github.com/juju/errors"

	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn"
)

const (
	// The loader accepts at most this much program data per command.
	programChunkSize = 4000

	sha256DigestLen = 32
)

var (
	cmdFlashErase   = conn.CmdDesc{ID: 0x30, Name: "flash_erase", Resp: conn.RespNone}
	cmdFlashProgram = conn.CmdDesc{ID: 0x31, Name: "flash_program", Resp: conn.RespNone}
	cmdFlashRead    = conn.CmdDesc{ID: 0x32, Name: "flash_read", Resp: conn.RespVar}
	cmdSha256Read   = conn.CmdDesc{
		ID: 0x3d, Name: "sha256_read", Resp: conn.RespFixed,
		FixedLen: sha256DigestLen, Magic: []byte{0x20, 0x00},
	}
)

type LoaderClient struct {
	c *conn.Conn
}

func New(c *conn.Conn) *LoaderClient {
	return &LoaderClient{c: c}
}

// Sha256Read asks the loader to hash length bytes of flash at addr.
func (lc *LoaderClient) Sha256Read(addr, length uint32) ([]byte, error) {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint32(body[0:4], addr)
	binary.LittleEndian.PutUint32(body[4:8], length)
	digest, err := lc.c.Command(cmdSha256Read, body)
	return digest, errors.Trace(err)
}

// FlashRead reads size bytes of flash at addr.
func (lc *LoaderClient) FlashRead(addr, size uint32) ([]byte, error) {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint32(body[0:4], addr)
	binary.LittleEndian.PutUint32(body[4:8], size)
	data, err := lc.c.Command(cmdFlashRead, body)
	return data, errors.Trace(err)
}

// FlashErase erases [start, end): end is the first address left untouched.
func (lc *LoaderClient) FlashErase(start, end uint32) error {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint32(body[0:4], start)
	binary.LittleEndian.PutUint32(body[4:8], end)
	_, err := lc.c.Command(cmdFlashErase, body)
	return errors.Trace(err)
}

// FlashProgram writes the next chunk from r at addr, up to 4000 bytes per
// command. It returns the number of bytes consumed; zero means the source
// is drained and nothing was sent.
func (lc *LoaderClient) FlashProgram(addr uint32, r io.Reader) (int, error) {
	buf := make([]byte, 4+programChunkSize)
	binary.LittleEndian.PutUint32(buf[0:4], addr)
	n, err := io.ReadFull(r, buf[4:])
	if err == io.EOF {
		return 0, nil
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, errors.Annotatef(err, "failed to read program data")
	}
	if n == 0 {
		return 0, nil
	}
	if _, err := lc.c.Command(cmdFlashProgram, buf[:4+n]); err != nil {
		return 0, errors.Trace(err)
	}
	return n, nil
}
