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
package loader_client

import (
	"bytes"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bouffalo-tools/blflash/cli/flash/bl"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn/conntest"
)

func newTestClient(p *conntest.ScriptedPort) *LoaderClient {
	return New(conn.New(p, 1000000, "rts", "!dtr"))
}

func TestFlashErase(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	lc := newTestClient(p)
	// End is exclusive: the first address NOT erased.
	require.NoError(t, lc.FlashErase(0x10000, 0x1000f))
	frames := p.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{
		0x30, 0x00, 0x08, 0x00,
		0x00, 0x00, 0x01, 0x00,
		0x0f, 0x00, 0x01, 0x00,
	}, frames[0])
}

func TestSha256Read(t *testing.T) {
	digest := make([]byte, 32)
	for i := range digest {
		digest[i] = byte(i)
	}
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x20, 0x00)
	p.Script(digest...)
	lc := newTestClient(p)
	got, err := lc.Sha256Read(0x10000, 15)
	require.NoError(t, err)
	assert.Equal(t, digest, got)

	frames := p.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{
		0x3d, 0x00, 0x08, 0x00,
		0x00, 0x00, 0x01, 0x00,
		0x0f, 0x00, 0x00, 0x00,
	}, frames[0])
}

func TestSha256ReadBadMagic(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x00, 0x20)
	p.Script(make([]byte, 32)...)
	_, err := newTestClient(p).Sha256Read(0, 32)
	assert.Equal(t, conn.ErrResponse, errors.Cause(err))
}

func TestFlashRead(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x04, 0x00, 0x11, 0x22, 0x33, 0x44)
	lc := newTestClient(p)
	data, err := lc.FlashRead(0x2000, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, data)

	frames := p.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{
		0x32, 0x00, 0x08, 0x00,
		0x00, 0x20, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
	}, frames[0])
}

func TestFlashProgramChunking(t *testing.T) {
	data := make([]byte, 4100)
	for i := range data {
		data[i] = byte(i)
	}
	src := bytes.NewReader(data)
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.ScriptOK()
	lc := newTestClient(p)

	n, err := lc.FlashProgram(0x10000, src)
	require.NoError(t, err)
	assert.Equal(t, 4000, n)

	n, err = lc.FlashProgram(0x10000+4000, src)
	require.NoError(t, err)
	assert.Equal(t, 100, n)

	n, err = lc.FlashProgram(0x10000+4100, src)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	frames := p.Frames()
	require.Len(t, frames, 2)
	// addr + data, 4004 bytes of body.
	assert.Equal(t, []byte{0x31, 0x00, 0xa4, 0x0f, 0x00, 0x00, 0x01, 0x00}, frames[0][:8])
	assert.Equal(t, data[:4000], frames[0][8:])
	assert.Equal(t, []byte{0x31, 0x00, 0x68, 0x00, 0xa0, 0x0f, 0x01, 0x00}, frames[1][:8])
	assert.Equal(t, data[4000:], frames[1][8:])
}

func TestProgramErrorSurfaces(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptFail(0x0006)
	lc := newTestClient(p)
	_, err := lc.FlashProgram(0, bytes.NewReader(make([]byte, 16)))
	assert.Equal(t, bl.RomFlashWriteError, errors.Cause(err))
}
