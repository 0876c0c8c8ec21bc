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

// Package conntest provides a scripted serial endpoint for protocol tests.
package conntest

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/juju/errors"
)

// PinEvent records one control-line transition as driven by the code under
// test, after any '!' inversion was applied.
type PinEvent struct {
	Pin   string // "rts" or "dtr"
	Level bool
}

// ScriptedPort implements serial.Serial against a canned response stream.
// Writes are recorded per call, reads drain the scripted bytes, and an
// exhausted script behaves like a read timeout.
type ScriptedPort struct {
	resp     bytes.Buffer
	writes   [][]byte
	Pins     []PinEvent
	BaudRate uint
	Timeout  time.Duration
	Closed   bool
	Flushes  int
}

func NewScriptedPort() *ScriptedPort {
	return &ScriptedPort{}
}

// Script appends bytes the fake peer will answer with.
func (p *ScriptedPort) Script(data ...byte) {
	p.resp.Write(data)
}

// ScriptOK queues a bare success status.
func (p *ScriptedPort) ScriptOK() {
	p.Script('O', 'K')
}

// ScriptFail queues a failure status with the given ROM code.
func (p *ScriptedPort) ScriptFail(code uint16) {
	p.Script('F', 'L')
	var cb [2]byte
	binary.LittleEndian.PutUint16(cb[:], code)
	p.Script(cb[:]...)
}

func (p *ScriptedPort) Read(buf []byte) (int, error) {
	if p.resp.Len() == 0 {
		return 0, errors.New("read timed out")
	}
	return p.resp.Read(buf)
}

func (p *ScriptedPort) Write(data []byte) (int, error) {
	w := make([]byte, len(data))
	copy(w, data)
	p.writes = append(p.writes, w)
	return len(data), nil
}

// Writes returns every Write call recorded so far.
func (p *ScriptedPort) Writes() [][]byte {
	return p.writes
}

// Frames returns the recorded writes with auto-baud training bursts (runs
// of 0x55) filtered out, leaving only command frames.
func (p *ScriptedPort) Frames() [][]byte {
	var frames [][]byte
	for _, w := range p.writes {
		if len(w) > 0 && bytes.Count(w, []byte{0x55}) == len(w) {
			continue
		}
		frames = append(frames, w)
	}
	return frames
}

func (p *ScriptedPort) Close() error {
	p.Closed = true
	return nil
}

// Flush is recorded but keeps scripted input intact, so a canned dialogue
// survives the connect loop's pre-handshake flushes.
func (p *ScriptedPort) Flush() error {
	p.Flushes++
	return nil
}

func (p *ScriptedPort) SetBaudRate(baudRate uint) error {
	p.BaudRate = baudRate
	return nil
}

func (p *ScriptedPort) SetReadTimeout(timeout time.Duration) error {
	p.Timeout = timeout
	return nil
}

func (p *ScriptedPort) SetDTR(dtr bool) error {
	p.Pins = append(p.Pins, PinEvent{Pin: "dtr", Level: dtr})
	return nil
}

func (p *ScriptedPort) SetRTS(rts bool) error {
	p.Pins = append(p.Pins, PinEvent{Pin: "rts", Level: rts})
	return nil
}

func (p *ScriptedPort) SetRTSDTR(rts, dtr bool) error {
	p.Pins = append(p.Pins, PinEvent{Pin: "rts", Level: rts})
	p.Pins = append(p.Pins, PinEvent{Pin: "dtr", Level: dtr})
	return nil
}

func (p *ScriptedPort) SetBreak(active bool) error {
	return nil
}
