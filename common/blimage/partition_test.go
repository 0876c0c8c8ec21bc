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
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPartitionCfg = `
[pt_table]
address0 = 0xE000
address1 = 0xF000

[[pt_entry]]
type = 0
name = "FW"
device = 0
address0 = 0x10000
address1 = 0xD0000
size0 = 0xC0000
size1 = 0xC0000
len = 0

[[pt_entry]]
type = 4
name = "PSM"
device = 0
address0 = 0x1F4000
address1 = 0
size0 = 0x4000
size1 = 0
len = 0
`

func TestParsePartitionCfg(t *testing.T) {
	cfg, err := ParsePartitionCfg([]byte(testPartitionCfg))
	require.NoError(t, err)
	assert.Equal(t, uint32(0xe000), cfg.Table.Address0)
	assert.Equal(t, uint32(0xf000), cfg.Table.Address1)
	require.Len(t, cfg.Entries, 2)

	fw := cfg.Entry("FW")
	require.NotNil(t, fw)
	assert.Equal(t, uint32(0x10000), fw.Address0)
	assert.Equal(t, uint32(0xc0000), fw.Size0)
	assert.Nil(t, cfg.Entry("nope"))
}

func TestParsePartitionCfgEmpty(t *testing.T) {
	_, err := ParsePartitionCfg([]byte("[pt_table]\naddress0 = 0xE000\n"))
	assert.Error(t, err)
}

func TestPartitionTableToBytes(t *testing.T) {
	cfg, err := ParsePartitionCfg([]byte(testPartitionCfg))
	require.NoError(t, err)
	pt, err := cfg.ToBytes()
	require.NoError(t, err)

	// Header, two 36-byte entries, entry CRC.
	require.Len(t, pt, 16+2*36+4)

	le := binary.LittleEndian
	// "BFPT"
	assert.Equal(t, []byte{0x42, 0x46, 0x50, 0x54}, pt[0:4])
	assert.Equal(t, uint16(1), le.Uint16(pt[4:6]))
	assert.Equal(t, uint16(2), le.Uint16(pt[6:8]))
	assert.Equal(t, crc32.ChecksumIEEE(pt[:12]), le.Uint32(pt[12:16]))

	e0 := pt[16 : 16+36]
	assert.Equal(t, byte(0), e0[0])
	assert.Equal(t, []byte("FW\x00\x00\x00\x00\x00\x00\x00"), e0[3:12])
	assert.Equal(t, uint32(0x10000), le.Uint32(e0[12:16]))
	assert.Equal(t, uint32(0xd0000), le.Uint32(e0[16:20]))
	assert.Equal(t, uint32(0xc0000), le.Uint32(e0[20:24]))

	e1 := pt[16+36 : 16+72]
	assert.Equal(t, byte(4), e1[0])
	assert.Equal(t, []byte("PSM\x00\x00\x00\x00\x00\x00"), e1[3:12])

	body := pt[16 : len(pt)-4]
	assert.Equal(t, crc32.ChecksumIEEE(body), le.Uint32(pt[len(pt)-4:]))
}

func TestPartitionNameTooLong(t *testing.T) {
	cfg := &PartitionCfg{Entries: []PtEntry{{Name: "way-too-long-name"}}}
	_, err := cfg.ToBytes()
	assert.Error(t, err)
}
