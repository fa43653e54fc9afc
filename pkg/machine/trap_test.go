// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package machine_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/lc3vm/pkg/machine"
)

func newTrapMachine(keys string, display *bytes.Buffer) *machine.Machine {
	var mc machine.Machine
	var devices machine.DeviceHandler

	devices.Keyboard = machine.NewReaderKeyboard(strings.NewReader(keys))
	devices.Display = bufio.NewWriter(display)
	mc.Devices = &devices

	mc.State.Reset()

	return &mc
}

func TestTrapGetc(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("q", &display)
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0000
	mc.State.Condition = machine.FLAG_NEG

	mc.Step()

	assert.Equal(uint16('q'), mc.State.Registers[0])
	assert.Equal(uint16(0x3001), mc.State.Registers[7])
	assert.Equal(uint16(0x3001), mc.State.Program)

	// No echo, and the condition flags are left alone
	assert.Empty(display.String())
	assert.Equal(machine.FLAG_NEG, mc.State.Condition)
}

func TestTrapGetcExhaustedInput(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("", &display)
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0000

	mc.Step()

	assert.Equal(uint16(0xFFFF), mc.State.Registers[0])
	assert.Empty(display.String())
}

func TestTrapGetcAfterStatusPoll(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("ab", &display)
	mc.State.Registers[1] = machine.DEV_KBSR
	mc.State.Memory[0x3000] = 0b0110_000_001_000000
	mc.State.Memory[0x3001] = 0b1111_0000_0010_0000

	mc.Step()
	mc.Step()

	// The status poll consumed 'a' into the data register, leaving 'b'
	// for the trap
	assert.Equal(uint16('b'), mc.State.Registers[0])
	assert.Equal(uint16('a'), mc.State.Memory[machine.DEV_KBDR])
}

func TestTrapOut(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("", &display)
	mc.State.Registers[0] = 0xAA41
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0001

	mc.Step()

	// Only the low byte is written
	assert.Equal("A", display.String())
	assert.Equal(uint16(0x3001), mc.State.Registers[7])
}

func TestTrapPuts(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("", &display)
	mc.State.Registers[0] = 0x4000
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0010
	mc.State.Memory[0x4000] = 0x0048
	mc.State.Memory[0x4001] = 0x0049
	mc.State.Memory[0x4002] = 0x0000

	mc.Step()

	assert.Equal("HI", display.String())
}

func TestTrapPutsWrapsAddress(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("", &display)
	mc.State.Registers[0] = 0xFFFE
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0010
	mc.State.Memory[0xFFFE] = 0x0041
	mc.State.Memory[0xFFFF] = 0x0042

	mc.Step()

	// The terminator is the zero word at 0x0000
	assert.Equal("AB", display.String())
}

func TestTrapIn(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("y", &display)
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0011

	mc.Step()

	assert.Equal("Enter a character: y", display.String())
	assert.Equal(uint16('y'), mc.State.Registers[0])
	assert.Equal(machine.FLAG_ZERO, mc.State.Condition)
}

func TestTrapInExhaustedInput(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("", &display)
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0011

	mc.Step()

	// The prompt is written but nothing echoes
	assert.Equal("Enter a character: ", display.String())
	assert.Equal(uint16(0xFFFF), mc.State.Registers[0])
}

func TestTrapPutsp(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("", &display)
	mc.State.Registers[0] = 0x4000
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0100
	mc.State.Memory[0x4000] = 0x6548
	mc.State.Memory[0x4001] = 0x6C6C
	mc.State.Memory[0x4002] = 0x006F
	mc.State.Memory[0x4003] = 0x0000

	mc.Step()

	assert.Equal("Hello", display.String())
}

func TestTrapHalt(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("", &display)
	mc.State.Memory[0x3000] = 0b1111_0000_0010_0101

	mc.Step()

	assert.True(mc.Halted)
	assert.Equal("HALT\n", display.String())
}

func TestTrapUnknownVector(t *testing.T) {
	assert := assert.New(t)

	var display bytes.Buffer
	mc := newTrapMachine("z", &display)
	mc.State.Memory[0x3000] = 0b1111_0000_0111_1111

	mc.Step()

	assert.False(mc.Halted)
	assert.Equal(uint16(0x3001), mc.State.Registers[7])
	assert.Equal(uint16(0x3001), mc.State.Program)
	assert.Equal(uint16(0x0000), mc.State.Registers[0])
	assert.Empty(display.String())
}
