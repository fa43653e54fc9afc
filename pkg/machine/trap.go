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

package machine

import (
	"io"
)

// Trap services run in the host rather than through a trap vector table in
// machine memory. Unknown vectors fall through as no-ops, with R7 already
// holding the return address.
var trapServices = map[uint16]func(*Machine){
	TRAP_GETC:  (*Machine).trapGetc,
	TRAP_OUT:   (*Machine).trapOut,
	TRAP_PUTS:  (*Machine).trapPuts,
	TRAP_IN:    (*Machine).trapIn,
	TRAP_PUTSP: (*Machine).trapPutsp,
	TRAP_HALT:  (*Machine).trapHalt,
}

func (mc *Machine) trap(vector uint16) {
	if service, exists := trapServices[vector]; exists {
		service(mc)
	}
}

func (mc *Machine) putByte(value byte) {
	if err := mc.Devices.Display.WriteByte(value); err != nil {
		panic(err)
	}
}

func (mc *Machine) putString(value string) {
	if _, err := mc.Devices.Display.WriteString(value); err != nil {
		panic(err)
	}
}

func (mc *Machine) flush() {
	if err := mc.Devices.Display.Flush(); err != nil {
		panic(err)
	}
}

// GETC reads a single key into R0 without echoing it. Condition flags are
// left alone. Exhausted input reads as 0xFFFF so programs can detect it.
func (mc *Machine) trapGetc() {
	key, err := mc.Devices.Keyboard.ReadByte()

	if err == io.EOF {
		mc.State.Registers[0] = 0xFFFF
		return
	} else if err != nil {
		panic(err)
	}

	mc.State.Registers[0] = uint16(key)
}

// OUT writes the low byte of R0 to the display.
func (mc *Machine) trapOut() {
	mc.putByte(byte(mc.State.Registers[0]))
	mc.flush()
}

// PUTS writes the string starting at the address in R0, one character per
// word, stopping at the first zero word.
func (mc *Machine) trapPuts() {
	for addr := mc.State.Registers[0]; ; addr++ {
		character := mc.read(addr)

		if character == 0 {
			break
		}

		mc.putByte(byte(character))
	}

	mc.flush()
}

// IN prompts for a single key, echoes it, and stores it into R0. Condition
// flags are left alone, and exhausted input reads as 0xFFFF with no echo.
func (mc *Machine) trapIn() {
	mc.putString("Enter a character: ")
	mc.flush()

	key, err := mc.Devices.Keyboard.ReadByte()

	if err == io.EOF {
		mc.State.Registers[0] = 0xFFFF
		return
	} else if err != nil {
		panic(err)
	}

	mc.putByte(key)
	mc.flush()

	mc.State.Registers[0] = uint16(key)
}

// PUTSP writes the string starting at the address in R0, two characters
// packed per word with the low byte first, stopping at the first zero word.
// A zero high byte inside a nonzero word is skipped rather than written.
func (mc *Machine) trapPutsp() {
	for addr := mc.State.Registers[0]; ; addr++ {
		characters := mc.read(addr)

		if characters == 0 {
			break
		}

		mc.putByte(byte(characters))

		if high := byte(characters >> 8); high != 0 {
			mc.putByte(high)
		}
	}

	mc.flush()
}

// HALT announces the halt on the display and stops the machine.
func (mc *Machine) trapHalt() {
	mc.putString("HALT\n")
	mc.flush()

	mc.Halted = true
}
