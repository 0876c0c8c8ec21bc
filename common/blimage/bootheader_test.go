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
	"crypto/sha256"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBootHeaderCfg = `
[BOOTHEADER_CFG]
magic_code = 0x504e4642
revision = 0x01
flashcfg_magic_code = 0x47464346
io_mode = 4
cont_read_support = 1
clkcfg_magic_code = 0x47464350
xtal_type = 4
pll_clk = 4
bclk_div = 1
bootcfg = 0x01
boot_entry = 0
# Keys the builder does not consume parse fine.
flash_io_mode = 1
sign = 0
`

func TestParseBootHeaderCfg(t *testing.T) {
	cfg, err := ParseBootHeaderCfg([]byte(testBootHeaderCfg))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x504e4642), cfg.MagicCode)
	assert.Equal(t, uint8(4), cfg.IoMode)
	assert.Equal(t, uint8(4), cfg.XtalType)
	assert.Equal(t, uint32(1), cfg.BootCfg)
}

func TestMakeImage(t *testing.T) {
	cfg, err := ParseBootHeaderCfg([]byte(testBootHeaderCfg))
	require.NoError(t, err)

	img := []byte("firmware contents")
	out, err := cfg.MakeImage(0x1000, img)
	require.NoError(t, err)
	require.Len(t, out, 0x1000+len(img))

	le := binary.LittleEndian
	// "BFNP"
	assert.Equal(t, []byte{0x42, 0x46, 0x4e, 0x50}, out[0:4])
	// Image length and start offset.
	assert.Equal(t, uint32(len(img)), le.Uint32(out[120:124]))
	assert.Equal(t, uint32(0x1000), le.Uint32(out[128:132]))
	// SHA-256 of the payload.
	hash := sha256.Sum256(img)
	assert.Equal(t, hash[:], out[132:164])
	// Trailing CRC32 covers the rest of the header.
	assert.Equal(t, crc32.ChecksumIEEE(out[:172]), le.Uint32(out[172:176]))
	// Header padding is erased-flash filler, then the payload verbatim.
	for i := BootHeaderLen; i < 0x1000; i++ {
		require.Equal(t, byte(0xff), out[i], "offset 0x%x", i)
	}
	assert.Equal(t, img, out[0x1000:])
}

func TestMakeImageDefaultsMagics(t *testing.T) {
	// An empty config still produces a well-formed header.
	out, err := (&BootHeaderCfg{}).MakeImage(BootHeaderLen, []byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42, 0x46, 0x4e, 0x50}, out[0:4])
	assert.Equal(t, []byte{0x46, 0x43, 0x46, 0x47}, out[8:12])
	assert.Equal(t, []byte{0x50, 0x43, 0x46, 0x47}, out[100:104])
}

func TestMakeImageBadOffset(t *testing.T) {
	_, err := (&BootHeaderCfg{}).MakeImage(100, []byte{0x01})
	assert.Error(t, err)
}
