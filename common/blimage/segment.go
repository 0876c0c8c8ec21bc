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

import "fmt"

// RomSegment is a contiguous region of flash to be written: an absolute
// flash address and the bytes that go there. Segments are independent of
// each other and immutable for the duration of the operation consuming them.
type RomSegment struct {
	Addr uint32
	Data []byte
}

func (s *RomSegment) Size() uint32 {
	return uint32(len(s.Data))
}

// End returns the first address past the segment.
func (s *RomSegment) End() uint32 {
	return s.Addr + s.Size()
}

func (s *RomSegment) String() string {
	return fmt.Sprintf("%d @ 0x%x", len(s.Data), s.Addr)
}

// CodeSegment is a loadable program segment as found in an ELF image, using
// the physical (load) address. Chip profiles decide which of these map into
// the flash window.
type CodeSegment struct {
	Addr uint32
	Data []byte
}
