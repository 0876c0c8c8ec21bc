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
package rom_client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bouffalo-tools/blflash/cli/flash/bl"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn/conntest"
)

func newTestClient(p *conntest.ScriptedPort, ct bl.ChipType) *ROMClient {
	return New(conn.New(p, 115200, "rts", "!dtr"), ct)
}

func TestGetBootInfoV1Widening(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	// len, bootrom version, then 16 bytes of OTP.
	p.Script(0x00, 0x1a, 0x34, 0x12, 0x00, 0x00)
	otp := make([]byte, 16)
	for i := range otp {
		otp[i] = byte(i + 1)
	}
	p.Script(otp...)

	bi, err := newTestClient(p, bl.ChipBL602).GetBootInfo()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1a00), bi.Len)
	assert.Equal(t, uint32(0x1234), bi.BootROMVersion)
	assert.Equal(t, otp, bi.OTPInfo[:])
	// v1 widens to v2 with zeroed extra bytes.
	assert.Equal(t, [4]byte{}, bi.Extra)

	frames := p.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0x10, 0x00, 0x00, 0x00}, frames[0])
}

func TestGetBootInfoV2(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x18, 0x00, 0x01, 0x00, 0x00, 0x00)
	p.Script(make([]byte, 16)...)
	p.Script(0xca, 0xfe, 0xba, 0xbe)

	bi, err := newTestClient(p, bl.ChipBL616).GetBootInfo()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), bi.BootROMVersion)
	assert.Equal(t, [4]byte{0xca, 0xfe, 0xba, 0xbe}, bi.Extra)
}

func TestLoadBootHeader(t *testing.T) {
	hdr := make([]byte, BootHeaderLen)
	for i := range hdr {
		hdr[i] = byte(i)
	}
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	rc := newTestClient(p, bl.ChipBL602)
	require.NoError(t, rc.LoadBootHeader(bytes.NewReader(hdr)))

	frames := p.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, append([]byte{0x11, 0x00, 0xb0, 0x00}, hdr...), frames[0])
}

func TestLoadBootHeaderShortSource(t *testing.T) {
	p := conntest.NewScriptedPort()
	rc := newTestClient(p, bl.ChipBL602)
	err := rc.LoadBootHeader(bytes.NewReader(make([]byte, 100)))
	assert.Error(t, err)
	// Nothing went on the wire.
	assert.Empty(t, p.Frames())
}

func TestLoadSegmentHeaderEcho(t *testing.T) {
	hdr := make([]byte, SegmentHeaderLen)
	for i := range hdr {
		hdr[i] = byte(0xf0 + i)
	}

	// Exact echo.
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x10, 0x00)
	p.Script(hdr...)
	rc := newTestClient(p, bl.ChipBL602)
	require.NoError(t, rc.LoadSegmentHeader(bytes.NewReader(hdr)))
	frames := p.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, append([]byte{0x17, 0x00, 0x10, 0x00}, hdr...), frames[0])

	// A normalized echo is recoverable: warn, not fail.
	p = conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x10, 0x00)
	changed := append([]byte(nil), hdr...)
	changed[0] ^= 0xff
	p.Script(changed...)
	rc = newTestClient(p, bl.ChipBL602)
	assert.NoError(t, rc.LoadSegmentHeader(bytes.NewReader(hdr)))
}

func TestLoadSegmentDataChunking(t *testing.T) {
	// 5000 bytes of source: one 4000-byte command, one 1000-byte command,
	// then a zero read with no command at all.
	src := bytes.NewReader(make([]byte, 5000))
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.ScriptOK()
	rc := newTestClient(p, bl.ChipBL602)

	n, err := rc.LoadSegmentData(src)
	require.NoError(t, err)
	assert.Equal(t, 4000, n)

	n, err = rc.LoadSegmentData(src)
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	n, err = rc.LoadSegmentData(src)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	frames := p.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, []byte{0x18, 0x00, 0xa0, 0x0f}, frames[0][:4])
	assert.Len(t, frames[0], 4+4000)
	assert.Equal(t, []byte{0x18, 0x00, 0xe8, 0x03}, frames[1][:4])
	assert.Len(t, frames[1], 4+1000)
}

func TestCheckAndRunImage(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.ScriptOK()
	rc := newTestClient(p, bl.ChipBL602)
	require.NoError(t, rc.CheckImage())
	require.NoError(t, rc.RunImage())
	frames := p.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, []byte{0x19, 0x00, 0x00, 0x00}, frames[0])
	assert.Equal(t, []byte{0x1a, 0x00, 0x00, 0x00}, frames[1])
}
