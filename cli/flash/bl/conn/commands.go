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
package conn

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/bouffalo-tools/blflash/cli/flash/bl"
)

// Response status headers. Anything else on the wire means lost sync.
var (
	statusOK   = []byte{0x4f, 0x4b} // "OK"
	statusFail = []byte{0x46, 0x4c} // "FL"
)

// RespKind tells the framer how to consume a successful response. The shape
// is a static property of the command, not of the bytes on the wire.
type RespKind int

const (
	// RespNone: a bare OK, no payload.
	RespNone RespKind = iota
	// RespVar: OK, then a u16 LE length, then that many payload bytes.
	RespVar
	// RespFixed: OK, then an optional magic prefix and a fixed-size payload.
	RespFixed
)

// CmdDesc describes one command of the bootloader protocol: its wire ID and
// the response shape the framer must drive.
type CmdDesc struct {
	ID       uint8
	Name     string
	Resp     RespKind
	FixedLen int
	// Magic is the expected prefix of a RespFixed payload.
	Magic []byte
}

// Command sends one framed command and consumes its response. The outbound
// frame is [id, checksum, len u16 LE, body]; the checksum field is not
// computed by any known ROM revision and stays zero to remain
// wire-compatible.
func (c *Conn) Command(desc CmdDesc, body []byte) ([]byte, error) {
	if len(body) > math.MaxUint16 {
		return nil, errors.Annotatef(ErrOverSizedPacket, "%s: %d bytes", desc.Name, len(body))
	}
	frame := make([]byte, 4+len(body))
	frame[0] = desc.ID
	frame[1] = 0 // checksum
	binary.LittleEndian.PutUint16(frame[2:4], uint16(len(body)))
	copy(frame[4:], body)
	glog.V(3).Infof("=> %s %s", desc.Name, hex.EncodeToString(frame[:4]))
	if err := c.WriteAll(frame); err != nil {
		return nil, errors.Annotatef(err, "failed to send %s", desc.Name)
	}
	if err := c.Flush(); err != nil {
		return nil, errors.Annotatef(err, "failed to flush %s", desc.Name)
	}
	payload, err := c.readResponse(desc)
	return payload, errors.Annotatef(err, "%s", desc.Name)
}

// ReadOK consumes a response that must be a bare OK. Used by the handshake,
// which has no command in flight.
func (c *Conn) ReadOK() error {
	_, err := c.readResponse(CmdDesc{Name: "handshake", Resp: RespNone})
	return err
}

func (c *Conn) readResponse(desc CmdDesc) ([]byte, error) {
	hdr, err := c.readExact(2)
	if err != nil {
		return nil, errors.Trace(err)
	}
	switch {
	case bytes.Equal(hdr, statusOK):
		switch desc.Resp {
		case RespNone:
			return nil, nil
		case RespFixed:
			if len(desc.Magic) > 0 {
				magic, err := c.readExact(len(desc.Magic))
				if err != nil {
					return nil, errors.Trace(err)
				}
				if !bytes.Equal(magic, desc.Magic) {
					return nil, errors.Annotatef(ErrResponse,
						"bad payload magic %s, want %s",
						hex.EncodeToString(magic), hex.EncodeToString(desc.Magic))
				}
			}
			return c.readExact(desc.FixedLen)
		case RespVar:
			lb, err := c.readExact(2)
			if err != nil {
				return nil, errors.Trace(err)
			}
			return c.readExact(int(binary.LittleEndian.Uint16(lb)))
		default:
			return nil, errors.Errorf("unknown response kind %d", desc.Resp)
		}
	case bytes.Equal(hdr, statusFail):
		cb, err := c.readExact(2)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, bl.RomErrorFromCode(binary.LittleEndian.Uint16(cb))
	default:
		glog.V(2).Infof("<= bad status header %s", hex.EncodeToString(hdr))
		return nil, ErrResponse
	}
}
