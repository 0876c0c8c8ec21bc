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
package bl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChipType(t *testing.T) {
	cases := []struct {
		s    string
		want ChipType
	}{
		{s: "bl602", want: ChipBL602},
		{s: "BL602", want: ChipBL602},
		{s: "bl616", want: ChipBL616},
		{s: "BL616", want: ChipBL616},
		// Unknown names fall back to the default instead of failing.
		{s: "", want: ChipBL602},
		{s: "bl702", want: ChipBL602},
		{s: "esp32", want: ChipBL602},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, ParseChipType(c.s), "case %q", c.s)
	}
}

func TestBootInfoVariant(t *testing.T) {
	assert.False(t, ChipBL602.BootInfoV2())
	assert.True(t, ChipBL616.BootInfoV2())
}

func TestRomErrorFromCode(t *testing.T) {
	cases := []struct {
		code uint16
		want RomError
	}{
		{code: 0x0003, want: RomFlashEraseError},
		{code: 0x0006, want: RomFlashWriteError},
		{code: 0x0104, want: RomCmdSeqError},
		{code: 0x0203, want: RomImgBootheaderMagicError},
		{code: 0xffff, want: RomFail},
		{code: 0x8fff, want: RomUnknown},
		// Codes outside the enumeration fold into the sentinel.
		{code: 0x1234, want: RomUnknown},
		{code: 0xbeef, want: RomUnknown},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, RomErrorFromCode(c.code), "case 0x%04x", c.code)
	}
}

func TestRomErrorError(t *testing.T) {
	var err error = RomFlashEraseError
	assert.Equal(t, "ROM error 0x0003 (FlashEraseError)", err.Error())
	assert.Equal(t, "Unknown", RomUnknown.String())
}
