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
	"hash/crc32"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

const (
	partitionTableMagic   = 0x54504642 // "BFPT"
	partitionTableVersion = 1
	partitionEntryLen     = 36
	partitionNameLen      = 9
)

// PartitionCfg mirrors partition_cfg_*.toml: the two table locations plus
// the entry list.
type PartitionCfg struct {
	Table   PtTable   `toml:"pt_table"`
	Entries []PtEntry `toml:"pt_entry"`
}

type PtTable struct {
	Address0 uint32 `toml:"address0"`
	Address1 uint32 `toml:"address1"`
	Age      uint32 `toml:"age"`
}

type PtEntry struct {
	Type     uint8  `toml:"type"`
	Device   uint8  `toml:"device"`
	Name     string `toml:"name"`
	Address0 uint32 `toml:"address0"`
	Address1 uint32 `toml:"address1"`
	Size0    uint32 `toml:"size0"`
	Size1    uint32 `toml:"size1"`
	Len      uint32 `toml:"len"`
	Age      uint32 `toml:"age"`
}

func ParsePartitionCfg(data []byte) (*PartitionCfg, error) {
	var cfg PartitionCfg
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Annotatef(err, "invalid partition config")
	}
	if len(cfg.Entries) == 0 {
		return nil, errors.Errorf("partition config has no entries")
	}
	return &cfg, nil
}

// Entry returns the named partition entry, or nil.
func (cfg *PartitionCfg) Entry(name string) *PtEntry {
	for i := range cfg.Entries {
		if cfg.Entries[i].Name == name {
			return &cfg.Entries[i]
		}
	}
	return nil
}

// ToBytes serializes the table the way the boot2 stage expects it on flash:
// a 16-byte CRC-protected header, 36-byte entries, and a CRC32 of the entry
// area.
func (cfg *PartitionCfg) ToBytes() ([]byte, error) {
	hdr := new(bytes.Buffer)
	le := binary.LittleEndian
	binary.Write(hdr, le, uint32(partitionTableMagic))
	binary.Write(hdr, le, uint16(partitionTableVersion))
	binary.Write(hdr, le, uint16(len(cfg.Entries)))
	binary.Write(hdr, le, cfg.Table.Age)
	binary.Write(hdr, le, crc32.ChecksumIEEE(hdr.Bytes()))

	entries := new(bytes.Buffer)
	for _, e := range cfg.Entries {
		if len(e.Name) >= partitionNameLen {
			return nil, errors.Errorf("partition name %q too long (max %d)", e.Name, partitionNameLen-1)
		}
		var name [partitionNameLen]byte
		copy(name[:], e.Name)
		entries.WriteByte(e.Type)
		entries.WriteByte(e.Device)
		entries.WriteByte(0) // active index
		entries.Write(name[:])
		binary.Write(entries, le, e.Address0)
		binary.Write(entries, le, e.Address1)
		binary.Write(entries, le, e.Size0)
		binary.Write(entries, le, e.Size1)
		binary.Write(entries, le, e.Len)
		binary.Write(entries, le, e.Age)
	}
	binary.Write(entries, le, crc32.ChecksumIEEE(entries.Bytes()))

	return append(hdr.Bytes(), entries.Bytes()...), nil
}
