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
	"bytes"
	"strings"
	"time"

	"github.com/cesanta/go-serial/serial"
	"github.com/golang/glog"
	"github.com/juju/errors"
)

var (
	ErrTimeout          = errors.New("timeout waiting for response")
	ErrConnectionFailed = errors.New("failed to connect to the bootloader")
	ErrResponse         = errors.New("invalid response header")
	ErrOverSizedPacket  = errors.New("packet too large for the wire format")
)

const (
	// Settle time after driving a control line.
	pinSettleTime = 10 * time.Millisecond
	// Length of the 0x55 auto-baud training burst.
	trainingDuration = 5 * time.Millisecond
	// The ROM needs a moment to lock its bit clock after the burst.
	trainingLockTime  = 200 * time.Millisecond
	handshakeTimeout  = 200 * time.Millisecond
	handshakeReads    = 5
	handshakeAttempts = 10
)

// Conn owns the serial endpoint and the two control lines that sequence
// reset and boot-mode entry. Exactly one protocol client talks through it
// at a time; the response to a command is always fully consumed before the
// next command goes out.
type Conn struct {
	s        serial.Serial
	baudRate uint
	timeout  time.Duration
	resetPin string
	bootPin  string
}

// Open opens portName with the fixed 8-N-1 framing the boot ROM expects and
// wraps it in a Conn. The pin arguments are expressions: "rts", "dtr" or
// "null", with a leading '!' inverting the driven level.
func Open(portName string, baudRate uint, resetPin, bootPin string) (*Conn, error) {
	glog.V(1).Infof("Opening %s @ %d...", portName, baudRate)
	s, err := serial.Open(serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		ParityMode:            serial.PARITY_NONE,
		StopBits:              1,
		HardwareFlowControl:   false,
		InterCharacterTimeout: 200,
		MinimumReadSize:       0,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "failed to open %s", portName)
	}
	return New(s, baudRate, resetPin, bootPin), nil
}

// New wraps an already-opened serial endpoint. The endpoint is exclusively
// owned by the returned Conn from here on.
func New(s serial.Serial, baudRate uint, resetPin, bootPin string) *Conn {
	return &Conn{s: s, baudRate: baudRate, resetPin: resetPin, bootPin: bootPin}
}

func (c *Conn) Close() error {
	return c.s.Close()
}

func (c *Conn) BaudRate() uint {
	return c.baudRate
}

// SetBaudRate reconfigures the endpoint in place. Only legal when the wire
// is quiescent; the remote side matches speed on its own timeline.
func (c *Conn) SetBaudRate(baudRate uint) error {
	if err := c.s.SetBaudRate(baudRate); err != nil {
		return errors.Annotatef(err, "failed to set baud rate to %d", baudRate)
	}
	c.baudRate = baudRate
	return nil
}

func (c *Conn) ReadTimeout() time.Duration {
	return c.timeout
}

func (c *Conn) SetReadTimeout(d time.Duration) error {
	if err := c.s.SetReadTimeout(d); err != nil {
		return errors.Annotatef(err, "failed to set read timeout")
	}
	c.timeout = d
	return nil
}

// WithTimeout runs f with the read timeout set to d, restoring the previous
// timeout on every exit path. The handshake leans on this: its tight 200 ms
// window nests inside the 10 s session timeout.
func (c *Conn) WithTimeout(d time.Duration, f func(c *Conn) error) error {
	old := c.timeout
	if err := c.SetReadTimeout(d); err != nil {
		return errors.Trace(err)
	}
	defer c.SetReadTimeout(old)
	return f(c)
}

func (c *Conn) setPin(expr string, level bool) error {
	if strings.HasPrefix(expr, "!") {
		level = !level
	}
	switch strings.TrimPrefix(expr, "!") {
	case "rts":
		if err := c.s.SetRTS(level); err != nil {
			return errors.Annotatef(err, "failed to set RTS")
		}
	case "dtr":
		if err := c.s.SetDTR(level); err != nil {
			return errors.Annotatef(err, "failed to set DTR")
		}
	case "null":
		// Wired externally, nothing to drive.
	default:
		return errors.Errorf("unknown pin %q, want rts, dtr or null", expr)
	}
	time.Sleep(pinSettleTime)
	return nil
}

// Reset pulses the reset line with boot deasserted, booting the application.
func (c *Conn) Reset() error {
	if err := c.setPin(c.bootPin, false); err != nil {
		return errors.Trace(err)
	}
	if err := c.setPin(c.resetPin, true); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.setPin(c.resetPin, false))
}

// ResetToFlash pulses reset with boot asserted, dropping the chip into its
// ROM bootloader.
func (c *Conn) ResetToFlash() error {
	if err := c.setPin(c.bootPin, true); err != nil {
		return errors.Trace(err)
	}
	if err := c.setPin(c.resetPin, true); err != nil {
		return errors.Trace(err)
	}
	if err := c.setPin(c.resetPin, false); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.setPin(c.bootPin, false))
}

// CalcDurationLength returns how many 8-N-1 bytes fit into d at the current
// baud rate.
func (c *Conn) CalcDurationLength(d time.Duration) int {
	return int(c.baudRate) / 10 / 1000 * int(d.Milliseconds())
}

func (c *Conn) WriteAll(data []byte) error {
	for written := 0; written < len(data); {
		n, err := c.s.Write(data[written:])
		if err != nil {
			return errors.Annotatef(err, "write failed @ %d/%d", written, len(data))
		}
		written += n
	}
	return nil
}

func (c *Conn) Flush() error {
	return c.s.Flush()
}

func (c *Conn) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	for got := 0; got < n; {
		nr, err := c.s.Read(buf[got:])
		if err != nil {
			return nil, errors.Annotatef(err, "read failed @ %d/%d", got, n)
		}
		if nr == 0 {
			return nil, errors.Annotatef(ErrTimeout, "read %d/%d", got, n)
		}
		got += nr
	}
	return buf, nil
}

// Handshake transmits the auto-baud training burst and waits for the remote
// to answer with a bare OK.
func (c *Conn) Handshake() error {
	return c.WithTimeout(handshakeTimeout, func(c *Conn) error {
		n := c.CalcDurationLength(trainingDuration)
		glog.V(2).Infof("training burst: %d bytes @ %d", n, c.baudRate)
		if err := c.WriteAll(bytes.Repeat([]byte{0x55}, n)); err != nil {
			return errors.Trace(err)
		}
		if err := c.Flush(); err != nil {
			return errors.Trace(err)
		}
		time.Sleep(trainingLockTime)
		for i := 0; i < handshakeReads; i++ {
			if err := c.ReadOK(); err == nil {
				return nil
			}
		}
		return ErrTimeout
	})
}

// Connect puts the chip into its ROM bootloader and handshakes until it
// answers. Retry lives here and only here; commands never retry.
func (c *Conn) Connect() error {
	if err := c.ResetToFlash(); err != nil {
		return errors.Trace(err)
	}
	for i := 1; i <= handshakeAttempts; i++ {
		c.Flush()
		if err := c.Handshake(); err == nil {
			return nil
		}
		glog.V(1).Infof("handshake attempt %d failed", i)
	}
	return ErrConnectionFailed
}
