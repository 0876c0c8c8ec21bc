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
	"debug/elf"
	"io"
	"sort"

	"github.com/golang/glog"
	"github.com/juju/errors"
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// IsELF reports whether data begins with the ELF magic. Anything else is
// treated as a raw flash image by the callers.
func IsELF(data []byte) bool {
	return len(data) >= len(elfMagic) && bytes.Equal(data[:len(elfMagic)], elfMagic)
}

// FirmwareImage is a parsed ELF firmware file.
type FirmwareImage struct {
	Entry    uint32
	segments []CodeSegment
}

func NewFirmwareImage(data []byte) (*FirmwareImage, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Annotatef(err, "invalid ELF image")
	}
	defer f.Close()
	fi := &FirmwareImage{Entry: uint32(f.Entry)}
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD || p.Filesz == 0 {
			continue
		}
		sd, err := io.ReadAll(p.Open())
		if err != nil {
			return nil, errors.Annotatef(err, "invalid ELF image: segment @ 0x%x", p.Paddr)
		}
		fi.segments = append(fi.segments, CodeSegment{Addr: uint32(p.Paddr), Data: sd})
	}
	return fi, nil
}

// CodeSegments returns the loadable segments in file order.
func (fi *FirmwareImage) CodeSegments() []CodeSegment {
	return fi.segments
}

// ToFlashBin folds the flash-resident segments into a single contiguous
// image. mapSegment is the chip profile's flash-window filter: it returns
// nil for segments that do not live in flash. Gaps between mapped segments
// are filled with 0xff, the erased state of the flash.
func (fi *FirmwareImage) ToFlashBin(mapSegment func(CodeSegment) *RomSegment) ([]byte, error) {
	var segs []*RomSegment
	for _, cs := range fi.segments {
		if rs := mapSegment(cs); rs != nil {
			segs = append(segs, rs)
		} else {
			glog.V(1).Infof("skipping non-flash segment %d @ 0x%x", len(cs.Data), cs.Addr)
		}
	}
	if len(segs) == 0 {
		return nil, errors.Errorf("no segments within the flash window")
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].Addr < segs[j].Addr })
	base := segs[0].Addr
	var bin []byte
	for _, rs := range segs {
		if rs.Addr < base+uint32(len(bin)) {
			return nil, errors.Errorf("segments 0x%x and 0x%x overlap", base, rs.Addr)
		}
		for uint32(len(bin)) < rs.Addr-base {
			bin = append(bin, 0xff)
		}
		bin = append(bin, rs.Data...)
	}
	return bin, nil
}
