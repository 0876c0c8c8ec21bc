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
package bl602

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bouffalo-tools/blflash/common/blimage"
)

func TestEflashLoaderShape(t *testing.T) {
	blob := New().EflashLoader()
	// Boot header, segment header, and at least one data chunk.
	require.Greater(t, len(blob), 176+16)
	assert.Equal(t, []byte{0x42, 0x46, 0x4e, 0x50}, blob[0:4])
}

func TestFlashSegmentWindow(t *testing.T) {
	c := New()
	cases := []struct {
		addr uint32
		want *uint32
	}{
		{addr: 0x23000000, want: new(uint32)},
		{addr: 0x23001000, want: func() *uint32 { v := uint32(0x1000); return &v }()},
		{addr: 0x22008000, want: nil}, // RAM
		{addr: 0x23400000, want: nil}, // past the window
	}
	for _, tc := range cases {
		rs := c.FlashSegment(blimage.CodeSegment{Addr: tc.addr, Data: []byte{1}})
		if tc.want == nil {
			assert.Nilf(t, rs, "case 0x%x", tc.addr)
		} else {
			require.NotNilf(t, rs, "case 0x%x", tc.addr)
			assert.Equalf(t, *tc.want, rs.Addr, "case 0x%x", tc.addr)
		}
	}
}

func TestWithBoot2Layout(t *testing.T) {
	c := New()
	partitionCfg, err := blimage.ParsePartitionCfg(c.DefaultPartitionCfg())
	require.NoError(t, err)
	bootHeaderCfg, err := blimage.ParseBootHeaderCfg(c.DefaultBootHeaderCfg())
	require.NoError(t, err)

	fw := []byte("application image")
	segs, err := c.WithBoot2(partitionCfg, bootHeaderCfg, c.DefaultRoParams(), fw)
	require.NoError(t, err)
	require.Len(t, segs, 5)

	assert.Equal(t, uint32(0x0), segs[0].Addr)
	assert.Equal(t, uint32(0xe000), segs[1].Addr)
	assert.Equal(t, uint32(0xf000), segs[2].Addr)
	assert.Equal(t, uint32(0x10000), segs[3].Addr)
	assert.Equal(t, uint32(0x1f8000), segs[4].Addr)

	// Both partition table copies carry identical bytes.
	assert.Equal(t, segs[1].Data, segs[2].Data)
	// boot2 and firmware images are headered.
	assert.Equal(t, []byte{0x42, 0x46, 0x4e, 0x50}, segs[0].Data[0:4])
	assert.Equal(t, []byte{0x42, 0x46, 0x4e, 0x50}, segs[3].Data[0:4])
	// Firmware payload sits at its configured in-image offset.
	assert.Equal(t, fw, segs[3].Data[0x1000:])
}

func TestMakeSegment(t *testing.T) {
	c := New()
	bootHeaderCfg, err := blimage.ParseBootHeaderCfg(c.DefaultBootHeaderCfg())
	require.NoError(t, err)
	seg, err := c.MakeSegment(bootHeaderCfg, []byte("fw"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0), seg.Addr)
	assert.Len(t, seg.Data, 0x2000+2)
}
