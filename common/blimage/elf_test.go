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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testProg struct {
	ptype uint32
	paddr uint64
	data  []byte
}

// buildELF assembles a minimal ELF64 little-endian executable with the
// given program segments and no section table.
func buildELF(t *testing.T, progs []testProg) []byte {
	t.Helper()
	le := binary.LittleEndian
	const ehsize, phentsize = 64, 56
	dataOff := uint64(ehsize + phentsize*len(progs))

	var buf bytes.Buffer
	ident := [16]byte{0x7f, 'E', 'L', 'F', 2 /* 64-bit */, 1 /* LSB */, 1 /* version */}
	buf.Write(ident[:])
	binary.Write(&buf, le, uint16(2))   // e_type: EXEC
	binary.Write(&buf, le, uint16(243)) // e_machine: RISC-V
	binary.Write(&buf, le, uint32(1))   // e_version
	binary.Write(&buf, le, uint64(0x23000000))
	binary.Write(&buf, le, uint64(ehsize)) // e_phoff
	binary.Write(&buf, le, uint64(0))      // e_shoff
	binary.Write(&buf, le, uint32(0))      // e_flags
	binary.Write(&buf, le, uint16(ehsize))
	binary.Write(&buf, le, uint16(phentsize))
	binary.Write(&buf, le, uint16(len(progs)))
	binary.Write(&buf, le, uint16(0)) // e_shentsize
	binary.Write(&buf, le, uint16(0)) // e_shnum
	binary.Write(&buf, le, uint16(0)) // e_shstrndx

	off := dataOff
	for _, p := range progs {
		binary.Write(&buf, le, p.ptype)
		binary.Write(&buf, le, uint32(5)) // p_flags: R+X
		binary.Write(&buf, le, off)
		binary.Write(&buf, le, p.paddr) // p_vaddr
		binary.Write(&buf, le, p.paddr)
		binary.Write(&buf, le, uint64(len(p.data))) // p_filesz
		binary.Write(&buf, le, uint64(len(p.data))) // p_memsz
		binary.Write(&buf, le, uint64(4))           // p_align
		off += uint64(len(p.data))
	}
	for _, p := range progs {
		buf.Write(p.data)
	}
	return buf.Bytes()
}

func flashWindow602(cs CodeSegment) *RomSegment {
	const romStart, romEnd = 0x23000000, 0x23400000
	if cs.Addr < romStart || cs.Addr >= romEnd {
		return nil
	}
	return &RomSegment{Addr: cs.Addr - romStart, Data: cs.Data}
}

func TestIsELF(t *testing.T) {
	assert.True(t, IsELF([]byte{0x7f, 'E', 'L', 'F', 0x02}))
	assert.False(t, IsELF([]byte{0x42, 0x46, 0x4e, 0x50}))
	assert.False(t, IsELF([]byte{0x7f}))
}

func TestFirmwareImageToFlashBin(t *testing.T) {
	data := buildELF(t, []testProg{
		{ptype: 1, paddr: 0x23000000, data: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{ptype: 1, paddr: 0x23000010, data: []byte{9, 10, 11, 12}},
		// RAM segment: dropped by the flash window filter.
		{ptype: 1, paddr: 0x42020000, data: []byte{0xde, 0xad}},
	})
	require.True(t, IsELF(data))

	fi, err := NewFirmwareImage(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x23000000), fi.Entry)
	require.Len(t, fi.CodeSegments(), 3)

	bin, err := fi.ToFlashBin(flashWindow602)
	require.NoError(t, err)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	want = append(want, bytes.Repeat([]byte{0xff}, 8)...)
	want = append(want, 9, 10, 11, 12)
	assert.Equal(t, want, bin)
}

func TestToFlashBinNoFlashSegments(t *testing.T) {
	data := buildELF(t, []testProg{
		{ptype: 1, paddr: 0x42020000, data: []byte{0xde, 0xad}},
	})
	fi, err := NewFirmwareImage(data)
	require.NoError(t, err)
	_, err = fi.ToFlashBin(flashWindow602)
	assert.Error(t, err)
}

func TestToFlashBinOverlap(t *testing.T) {
	data := buildELF(t, []testProg{
		{ptype: 1, paddr: 0x23000000, data: []byte{1, 2, 3, 4}},
		{ptype: 1, paddr: 0x23000002, data: []byte{5, 6}},
	})
	fi, err := NewFirmwareImage(data)
	require.NoError(t, err)
	_, err = fi.ToFlashBin(flashWindow602)
	assert.Error(t, err)
}

func TestNewFirmwareImageInvalid(t *testing.T) {
	_, err := NewFirmwareImage([]byte("not an elf at all"))
	assert.Error(t, err)
}
