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
package conn

import (
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bouffalo-tools/blflash/cli/flash/bl"
	"github.com/bouffalo-tools/blflash/cli/flash/bl/conn/conntest"
)

func newTestConn(p *conntest.ScriptedPort) *Conn {
	return New(p, 115200, "rts", "!dtr")
}

func TestCommandFrame(t *testing.T) {
	cases := []struct {
		id   uint8
		body []byte
	}{
		{id: 0x10, body: nil},
		{id: 0x18, body: []byte{0xde, 0xad, 0xbe, 0xef}},
		{id: 0x31, body: make([]byte, 300)},
	}
	for _, c := range cases {
		p := conntest.NewScriptedPort()
		p.ScriptOK()
		_, err := newTestConn(p).Command(CmdDesc{ID: c.id, Name: "test", Resp: RespNone}, c.body)
		require.NoErrorf(t, err, "case 0x%02x", c.id)
		frames := p.Frames()
		require.Lenf(t, frames, 1, "case 0x%02x", c.id)
		want := []byte{c.id, 0x00, byte(len(c.body)), byte(len(c.body) >> 8)}
		want = append(want, c.body...)
		assert.Equalf(t, want, frames[0], "case 0x%02x", c.id)
	}
}

func TestStatusDispatch(t *testing.T) {
	cases := []struct {
		name   string
		script []byte
		check  func(t *testing.T, err error)
	}{
		{
			name:   "ok",
			script: []byte{'O', 'K'},
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "rom error",
			script: []byte{'F', 'L', 0x03, 0x00},
			check: func(t *testing.T, err error) {
				assert.Equal(t, bl.RomFlashEraseError, errors.Cause(err))
			},
		},
		{
			name:   "unknown rom code",
			script: []byte{'F', 'L', 0xff, 0x8f},
			check: func(t *testing.T, err error) {
				assert.Equal(t, bl.RomUnknown, errors.Cause(err))
			},
		},
		{
			name:   "garbage header",
			script: []byte{'X', 'Y'},
			check: func(t *testing.T, err error) {
				assert.Equal(t, ErrResponse, errors.Cause(err))
			},
		},
	}
	for _, c := range cases {
		p := conntest.NewScriptedPort()
		p.Script(c.script...)
		_, err := newTestConn(p).Command(CmdDesc{ID: 0x19, Name: "test", Resp: RespNone}, nil)
		c.check(t, err)
	}
}

func TestVarResponse(t *testing.T) {
	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x03, 0x00, 0xaa, 0xbb, 0xcc)
	payload, err := newTestConn(p).Command(CmdDesc{ID: 0x17, Name: "test", Resp: RespVar}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, payload)
}

func TestFixedResponseMagic(t *testing.T) {
	desc := CmdDesc{ID: 0x3d, Name: "test", Resp: RespFixed, FixedLen: 2, Magic: []byte{0x20, 0x00}}

	p := conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x20, 0x00, 0x11, 0x22)
	payload, err := newTestConn(p).Command(desc, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22}, payload)

	p = conntest.NewScriptedPort()
	p.ScriptOK()
	p.Script(0x21, 0x00, 0x11, 0x22)
	_, err = newTestConn(p).Command(desc, nil)
	assert.Equal(t, ErrResponse, errors.Cause(err))
}

func TestOverSizedPacket(t *testing.T) {
	p := conntest.NewScriptedPort()
	_, err := newTestConn(p).Command(CmdDesc{ID: 0x18, Name: "test", Resp: RespNone}, make([]byte, 65536))
	assert.Equal(t, ErrOverSizedPacket, errors.Cause(err))
	assert.Empty(t, p.Frames())
}

func TestPinInversion(t *testing.T) {
	cases := []struct {
		expr  string
		level bool
		want  []conntest.PinEvent
	}{
		{expr: "rts", level: true, want: []conntest.PinEvent{{Pin: "rts", Level: true}}},
		{expr: "!rts", level: true, want: []conntest.PinEvent{{Pin: "rts", Level: false}}},
		{expr: "dtr", level: false, want: []conntest.PinEvent{{Pin: "dtr", Level: false}}},
		{expr: "!dtr", level: false, want: []conntest.PinEvent{{Pin: "dtr", Level: true}}},
		{expr: "null", level: true, want: nil},
	}
	for _, c := range cases {
		p := conntest.NewScriptedPort()
		err := newTestConn(p).setPin(c.expr, c.level)
		require.NoErrorf(t, err, "case %q", c.expr)
		assert.Equalf(t, c.want, p.Pins, "case %q", c.expr)
	}

	p := conntest.NewScriptedPort()
	err := newTestConn(p).setPin("cts", true)
	assert.Error(t, err)
	assert.Empty(t, p.Pins)
}

func TestResetSequences(t *testing.T) {
	// reset: drop boot, raise reset, drop reset. Boot is "!dtr", so the
	// wire level is inverted.
	p := conntest.NewScriptedPort()
	require.NoError(t, newTestConn(p).Reset())
	assert.Equal(t, []conntest.PinEvent{
		{Pin: "dtr", Level: true},
		{Pin: "rts", Level: true},
		{Pin: "rts", Level: false},
	}, p.Pins)

	// reset_to_flash: raise boot, pulse reset, drop boot.
	p = conntest.NewScriptedPort()
	require.NoError(t, newTestConn(p).ResetToFlash())
	assert.Equal(t, []conntest.PinEvent{
		{Pin: "dtr", Level: false},
		{Pin: "rts", Level: true},
		{Pin: "rts", Level: false},
		{Pin: "dtr", Level: true},
	}, p.Pins)
}

func TestWithTimeoutRestores(t *testing.T) {
	p := conntest.NewScriptedPort()
	c := newTestConn(p)
	require.NoError(t, c.SetReadTimeout(10*time.Second))

	err := c.WithTimeout(200*time.Millisecond, func(c *Conn) error {
		assert.Equal(t, 200*time.Millisecond, p.Timeout)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, p.Timeout)
	assert.Equal(t, 10*time.Second, c.ReadTimeout())

	// The previous timeout comes back on the failure path too.
	err = c.WithTimeout(200*time.Millisecond, func(c *Conn) error {
		return errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 10*time.Second, p.Timeout)
}

func TestCalcDurationLength(t *testing.T) {
	p := conntest.NewScriptedPort()
	c := newTestConn(p)
	assert.Equal(t, 55, c.CalcDurationLength(5*time.Millisecond))
	require.NoError(t, c.SetBaudRate(1000000))
	assert.Equal(t, 500, c.CalcDurationLength(5*time.Millisecond))
}

func TestHandshake(t *testing.T) {
	p := conntest.NewScriptedPort()
	c := newTestConn(p)
	require.NoError(t, c.SetReadTimeout(10*time.Second))
	p.ScriptOK()
	require.NoError(t, c.Handshake())

	writes := p.Writes()
	require.NotEmpty(t, writes)
	// 5 ms worth of 0x55 at 115200: 55 bytes (integer division).
	assert.Len(t, writes[0], 55)
	for _, b := range writes[0] {
		assert.Equal(t, byte(0x55), b)
	}
	// Scoped timeout restored after the handshake window.
	assert.Equal(t, 10*time.Second, p.Timeout)
}

func TestConnectFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("retry loop sleeps through the training windows")
	}
	p := conntest.NewScriptedPort()
	c := newTestConn(p)
	err := c.Connect()
	assert.Equal(t, ErrConnectionFailed, errors.Cause(err))
}
