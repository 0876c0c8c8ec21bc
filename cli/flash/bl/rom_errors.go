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

import "fmt"

// RomError is the failure code the boot ROM or the eflash loader sends after
// an "FL" status. The taxonomy is the ROM's own; keep it intact so operators
// can tell a flash-level fault from a command-sequencing one.
type RomError uint16

const (
	RomSuccess                    RomError = 0x0000
	RomFlashInitError             RomError = 0x0001
	RomFlashEraseParaError        RomError = 0x0002
	RomFlashEraseError            RomError = 0x0003
	RomFlashWriteParaError        RomError = 0x0004
	RomFlashWriteAddrError        RomError = 0x0005
	RomFlashWriteError            RomError = 0x0006
	RomFlashBootPara              RomError = 0x0007
	RomCmdIDError                 RomError = 0x0101
	RomCmdLenError                RomError = 0x0102
	RomCmdCrcError                RomError = 0x0103
	RomCmdSeqError                RomError = 0x0104
	RomImgBootheaderLenError      RomError = 0x0201
	RomImgBootheaderNotLoadError  RomError = 0x0202
	RomImgBootheaderMagicError    RomError = 0x0203
	RomImgBootheaderCrcError      RomError = 0x0204
	RomImgBootheaderEncryptNotfit RomError = 0x0205
	RomImgBootheaderSignNotfit    RomError = 0x0206
	RomImgSegmentCntError         RomError = 0x0207
	RomImgAesIvLenError           RomError = 0x0208
	RomImgAesIvCrcError           RomError = 0x0209
	RomImgPkLenError              RomError = 0x020a
	RomImgPkCrcError              RomError = 0x020b
	RomImgPkHashError             RomError = 0x020c
	RomImgSignatureLenError       RomError = 0x020d
	RomImgSignatureCrcError       RomError = 0x020e
	RomImgSectionheaderLenError   RomError = 0x020f
	RomImgSectionheaderCrcError   RomError = 0x0210
	RomImgSectionheaderDstError   RomError = 0x0211
	RomImgSectiondataLenError     RomError = 0x0212
	RomImgSectiondataDecError     RomError = 0x0213
	RomImgSectiondataTlenError    RomError = 0x0214
	RomImgSectiondataCrcError     RomError = 0x0215
	RomImgHalfbakedError          RomError = 0x0216
	RomImgHashError               RomError = 0x0217
	RomImgSignParseError          RomError = 0x0218
	RomImgSignError               RomError = 0x0219
	RomImgDecError                RomError = 0x021a
	RomImgAllInvalidError         RomError = 0x021b
	RomIfRateLenError             RomError = 0x0301
	RomIfRateParaError            RomError = 0x0302
	RomIfPasswordError            RomError = 0x0303
	RomIfPasswordClose            RomError = 0x0304
	RomPllError                   RomError = 0xfffc
	RomInvasionError              RomError = 0xfffd
	RomPolling                    RomError = 0xfffe
	RomFail                       RomError = 0xffff

	// RomUnknown is the sentinel for codes outside the enumeration.
	RomUnknown RomError = 0x8fff
)

var romErrorNames = map[RomError]string{
	RomSuccess:                    "Success",
	RomFlashInitError:             "FlashInitError",
	RomFlashEraseParaError:        "FlashEraseParaError",
	RomFlashEraseError:            "FlashEraseError",
	RomFlashWriteParaError:        "FlashWriteParaError",
	RomFlashWriteAddrError:        "FlashWriteAddrError",
	RomFlashWriteError:            "FlashWriteError",
	RomFlashBootPara:              "FlashBootPara",
	RomCmdIDError:                 "CmdIDError",
	RomCmdLenError:                "CmdLenError",
	RomCmdCrcError:                "CmdCrcError",
	RomCmdSeqError:                "CmdSeqError",
	RomImgBootheaderLenError:      "ImgBootheaderLenError",
	RomImgBootheaderNotLoadError:  "ImgBootheaderNotLoadError",
	RomImgBootheaderMagicError:    "ImgBootheaderMagicError",
	RomImgBootheaderCrcError:      "ImgBootheaderCrcError",
	RomImgBootheaderEncryptNotfit: "ImgBootheaderEncryptNotfit",
	RomImgBootheaderSignNotfit:    "ImgBootheaderSignNotfit",
	RomImgSegmentCntError:         "ImgSegmentCntError",
	RomImgAesIvLenError:           "ImgAesIvLenError",
	RomImgAesIvCrcError:           "ImgAesIvCrcError",
	RomImgPkLenError:              "ImgPkLenError",
	RomImgPkCrcError:              "ImgPkCrcError",
	RomImgPkHashError:             "ImgPkHashError",
	RomImgSignatureLenError:       "ImgSignatureLenError",
	RomImgSignatureCrcError:       "ImgSignatureCrcError",
	RomImgSectionheaderLenError:   "ImgSectionheaderLenError",
	RomImgSectionheaderCrcError:   "ImgSectionheaderCrcError",
	RomImgSectionheaderDstError:   "ImgSectionheaderDstError",
	RomImgSectiondataLenError:     "ImgSectiondataLenError",
	RomImgSectiondataDecError:     "ImgSectiondataDecError",
	RomImgSectiondataTlenError:    "ImgSectiondataTlenError",
	RomImgSectiondataCrcError:     "ImgSectiondataCrcError",
	RomImgHalfbakedError:          "ImgHalfbakedError",
	RomImgHashError:               "ImgHashError",
	RomImgSignParseError:          "ImgSignParseError",
	RomImgSignError:               "ImgSignError",
	RomImgDecError:                "ImgDecError",
	RomImgAllInvalidError:         "ImgAllInvalidError",
	RomIfRateLenError:             "IfRateLenError",
	RomIfRateParaError:            "IfRateParaError",
	RomIfPasswordError:            "IfPasswordError",
	RomIfPasswordClose:            "IfPasswordClose",
	RomPllError:                   "PllError",
	RomInvasionError:              "InvasionError",
	RomPolling:                    "Polling",
	RomFail:                       "Fail",
	RomUnknown:                    "Unknown",
}

// RomErrorFromCode maps a wire code to a RomError, folding codes outside
// the enumeration into RomUnknown.
func RomErrorFromCode(code uint16) RomError {
	e := RomError(code)
	if _, ok := romErrorNames[e]; !ok {
		return RomUnknown
	}
	return e
}

func (e RomError) String() string {
	if name, ok := romErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("RomError(0x%04x)", uint16(e))
}

func (e RomError) Error() string {
	return fmt.Sprintf("ROM error 0x%04x (%s)", uint16(e), e.String())
}
