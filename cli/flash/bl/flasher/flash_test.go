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
package flasher

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bouffalo-tools/blflash/cli/flash/bl"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn/conntest"
	"github.com/bouffalo-tools/blflash/common/blimage"
)

// testChip ships a deliberately tiny loader blob so the upload stays a
// single segment-data command.
type testChip struct {
	loader []byte
}

func newTestChip() *testChip {
	blob := make([]byte, 176+16+100)
	for i := range blob {
		blob[i] = byte(i)
	}
	return &testChip{loader: blob}
}

func (c *testChip) Target() string               { return "testchip" }
func (c *testChip) EflashLoader() []byte         { return c.loader }
func (c *testChip) DefaultPartitionCfg() []byte  { return nil }
func (c *testChip) DefaultBootHeaderCfg() []byte { return nil }
func (c *testChip) DefaultRoParams() []byte      { return nil }

func (c *testChip) FlashSegment(cs blimage.CodeSegment) *blimage.RomSegment {
	return nil
}

func (c *testChip) WithBoot2(partitionCfg *blimage.PartitionCfg, bootHeaderCfg *blimage.BootHeaderCfg, roParams, fw []byte) ([]blimage.RomSegment, error) {
	return nil, errors.New("not implemented")
}

func (c *testChip) MakeSegment(bootHeaderCfg *blimage.BootHeaderCfg, fw []byte) (*blimage.RomSegment, error) {
	return nil, errors.New("not implemented")
}

// scriptPreamble queues the whole connect + loader-upload dialogue:
// handshake, boot info, boot header, segment header echo, one data chunk,
// check, run, and the post-switch handshake.
func scriptPreamble(p *conntest.ScriptedPort, chip *testChip) {
	p.ScriptOK() // connect handshake
	p.ScriptOK() // boot info
	p.Script(0x16, 0x00, 0x01, 0x00, 0x00, 0x00)
	p.Script(make([]byte, 16)...)
	p.ScriptOK() // load_boot_header
	p.ScriptOK() // load_segment_header, echoed verbatim
	p.Script(0x10, 0x00)
	p.Script(chip.loader[176:192]...)
	p.ScriptOK() // load_segment_data (100 bytes)
	p.ScriptOK() // check_image
	p.ScriptOK() // run_image
	p.ScriptOK() // eflash loader handshake
}

// preambleFrames is the number of command frames the preamble produces:
// boot info, boot header, segment header, one data chunk, check, run.
const preambleFrames = 6

func newTestFlasher(t *testing.T, p *conntest.ScriptedPort, chip *testChip) *Flasher {
	t.Helper()
	c := conn.New(p, 115200, "rts", "!dtr")
	f, err := newFlasher(c, bl.ChipBL602, chip, 1000000)
	require.NoError(t, err)
	return f
}

func cmdIDs(frames [][]byte) []byte {
	var ids []byte
	for _, f := range frames {
		ids = append(ids, f[0])
	}
	return ids
}

func TestLoaderUploadSequence(t *testing.T) {
	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)

	f := newTestFlasher(t, p, chip)
	require.NoError(t, f.loadEflashLoader())

	assert.Equal(t, uint32(1), f.BootInfo().BootROMVersion)
	frames := p.Frames()
	require.Len(t, frames, preambleFrames)
	assert.Equal(t, []byte{0x10, 0x11, 0x17, 0x18, 0x19, 0x1a}, cmdIDs(frames))
	// 176-byte header, 16-byte segment header, then the rest in one chunk.
	assert.Len(t, frames[1], 4+176)
	assert.Len(t, frames[2], 4+16)
	assert.Len(t, frames[3], 4+100)
	// The link switched to the flash baud rate after run_image.
	assert.Equal(t, uint(1000000), p.BaudRate)
}

func TestHashSkip(t *testing.T) {
	seg := blimage.RomSegment{Addr: 0x10000, Data: []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}}
	local := sha256.Sum256(seg.Data)

	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	p.ScriptOK() // sha256_read: matches
	p.Script(0x20, 0x00)
	p.Script(local[:]...)

	f := newTestFlasher(t, p, chip)
	require.NoError(t, f.LoadSegments(false, []blimage.RomSegment{seg}))

	frames := p.Frames()[preambleFrames:]
	// Exactly one sha256_read, zero erase or program commands.
	require.Len(t, frames, 1)
	assert.Equal(t, byte(0x3d), frames[0][0])
}

func TestEraseProgramVerify(t *testing.T) {
	seg := blimage.RomSegment{Addr: 0x10000, Data: []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}}
	local := sha256.Sum256(seg.Data)

	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	p.ScriptOK() // sha256_read: stale contents
	p.Script(0x20, 0x00)
	p.Script(make([]byte, 32)...)
	p.ScriptOK() // flash_erase
	p.ScriptOK() // flash_program
	p.ScriptOK() // sha256_read after program: matches
	p.Script(0x20, 0x00)
	p.Script(local[:]...)

	f := newTestFlasher(t, p, chip)
	require.NoError(t, f.LoadSegments(false, []blimage.RomSegment{seg}))

	frames := p.Frames()[preambleFrames:]
	require.Len(t, frames, 4)
	assert.Equal(t, []byte{0x3d, 0x30, 0x31, 0x3d}, cmdIDs(frames))
	// Erase range is end-exclusive: [0x10000, 0x1000f).
	assert.Equal(t, []byte{
		0x30, 0x00, 0x08, 0x00,
		0x00, 0x00, 0x01, 0x00,
		0x0f, 0x00, 0x01, 0x00,
	}, frames[1])
	// One program command carrying addr + all 15 bytes.
	assert.Equal(t, append([]byte{0x31, 0x00, 0x13, 0x00, 0x00, 0x00, 0x01, 0x00}, seg.Data...), frames[2])
}

func TestForceSkipsHashCheck(t *testing.T) {
	seg := blimage.RomSegment{Addr: 0x0, Data: []byte{0xaa, 0xbb}}
	local := sha256.Sum256(seg.Data)

	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	p.ScriptOK() // flash_erase
	p.ScriptOK() // flash_program
	p.ScriptOK() // verify sha256_read
	p.Script(0x20, 0x00)
	p.Script(local[:]...)

	f := newTestFlasher(t, p, chip)
	require.NoError(t, f.LoadSegments(true, []blimage.RomSegment{seg}))

	frames := p.Frames()[preambleFrames:]
	assert.Equal(t, []byte{0x30, 0x31, 0x3d}, cmdIDs(frames))
}

func TestRomErrorStopsSegment(t *testing.T) {
	seg := blimage.RomSegment{Addr: 0x10000, Data: make([]byte, 15)}

	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	p.ScriptOK() // sha256_read: stale contents
	p.Script(0x20, 0x00)
	p.Script(bytes.Repeat([]byte{0xff}, 32)...)
	p.ScriptOK()         // flash_erase
	p.ScriptFail(0x0006) // flash_program fails

	f := newTestFlasher(t, p, chip)
	err := f.LoadSegments(false, []blimage.RomSegment{seg})
	assert.Equal(t, bl.RomFlashWriteError, errors.Cause(err))

	frames := p.Frames()[preambleFrames:]
	// No commands issued past the failing program.
	require.Len(t, frames, 3)
	assert.Equal(t, []byte{0x3d, 0x30, 0x31}, cmdIDs(frames))
}

func TestVerifyMismatchIsNonFatal(t *testing.T) {
	seg := blimage.RomSegment{Addr: 0x0, Data: []byte{0x01, 0x02}}

	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	p.ScriptOK() // sha256_read: stale contents
	p.Script(0x20, 0x00)
	p.Script(make([]byte, 32)...)
	p.ScriptOK() // flash_erase
	p.ScriptOK() // flash_program
	p.ScriptOK() // verify sha256_read: still wrong
	p.Script(0x20, 0x00)
	p.Script(make([]byte, 32)...)

	f := newTestFlasher(t, p, chip)
	// The loader's SHA path is advisory after a write: warn, don't fail.
	assert.NoError(t, f.LoadSegments(false, []blimage.RomSegment{seg}))
}

func TestCheckSegments(t *testing.T) {
	seg := blimage.RomSegment{Addr: 0x1000, Data: []byte{0x42}}
	local := sha256.Sum256(seg.Data)

	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	p.ScriptOK()
	p.Script(0x20, 0x00)
	p.Script(local[:]...)
	f := newTestFlasher(t, p, chip)
	require.NoError(t, f.CheckSegments([]blimage.RomSegment{seg}))
	frames := p.Frames()[preambleFrames:]
	assert.Equal(t, []byte{0x3d}, cmdIDs(frames))

	p = conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	p.ScriptOK()
	p.Script(0x20, 0x00)
	p.Script(make([]byte, 32)...)
	f = newTestFlasher(t, p, chip)
	assert.Error(t, f.CheckSegments([]blimage.RomSegment{seg}))
}

func TestDumpFlash(t *testing.T) {
	chip := newTestChip()
	p := conntest.NewScriptedPort()
	scriptPreamble(p, chip)
	// [0, 5000): a 4096-byte block, then a 904-byte one.
	p.ScriptOK()
	p.Script(0x00, 0x10)
	p.Script(bytes.Repeat([]byte{0xaa}, 4096)...)
	p.ScriptOK()
	p.Script(0x88, 0x03)
	p.Script(bytes.Repeat([]byte{0xbb}, 904)...)

	f := newTestFlasher(t, p, chip)
	var out bytes.Buffer
	require.NoError(t, f.DumpFlash(0, 5000, &out))
	assert.Equal(t, 5000, out.Len())

	frames := p.Frames()[preambleFrames:]
	require.Len(t, frames, 2)
	assert.Equal(t, []byte{
		0x32, 0x00, 0x08, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x10, 0x00, 0x00,
	}, frames[0])
	assert.Equal(t, []byte{
		0x32, 0x00, 0x08, 0x00,
		0x00, 0x10, 0x00, 0x00,
		0x88, 0x03, 0x00, 0x00,
	}, frames[1])
}
