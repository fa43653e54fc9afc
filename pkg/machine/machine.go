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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/lassandro/lc3vm/pkg/encoding"
)

func (mc *MachineState) Reset() {
	for i, _ := range mc.Registers {
		mc.Registers[i] = 0x0000
	}

	for i, _ := range mc.Memory {
		mc.Memory[i] = 0x0000
	}

	// Execution begins at the bottom of user space with the zero flag raised
	mc.Program = MEMSPACE_USER
	mc.Condition = FLAG_ZERO
}

// LoadImage copies a program image into memory. The image's first big-endian
// word names the origin address, and each following big-endian word lands at
// the next address from there. Loading stops at the end of the image or at
// the top of memory, whichever comes first; a trailing odd byte is ignored.
// Registers and the program counter are untouched, so images can be loaded
// in sequence, with later loads overwriting earlier ones where they overlap.
// Returns the number of words stored.
func (mc *Machine) LoadImage(reader io.Reader) (int, error) {
	scratch := make([]byte, 2)

	if _, err := io.ReadFull(reader, scratch); err != nil {
		return 0, errors.Wrap(err, "reading image origin")
	}

	origin := binary.BigEndian.Uint16(scratch)
	capacity := (1 << 16) - int(origin)

	words := 0

	for words < capacity {
		_, err := io.ReadFull(reader, scratch)

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		} else if err != nil {
			return words, errors.Wrap(err, "reading image word")
		}

		mc.State.Memory[origin+uint16(words)] = binary.BigEndian.Uint16(scratch)
		words++
	}

	return words, nil
}

func (mc *Machine) read(addr uint16) uint16 {
	if addr == DEV_KBSR {
		var key byte
		var err error

		if mc.Devices != nil && mc.Devices.Keyboard != nil {
			if mc.Devices.Keyboard.Poll() {
				key, err = mc.Devices.Keyboard.ReadByte()
				if err != nil && err != io.EOF {
					panic(err)
				}

			} else {
				err = io.EOF
			}

		} else {
			err = io.EOF
		}

		if err != io.EOF {
			mc.State.Memory[DEV_KBSR] = 1 << 15
			mc.State.Memory[DEV_KBDR] = uint16(key)
		} else {
			mc.State.Memory[DEV_KBSR] = 0
		}
	}

	if mc.Tracer != nil {
		mc.Tracer.Read(addr, mc)
	}

	return mc.State.Memory[addr]
}

func (mc *Machine) write(addr uint16, value uint16) {
	mc.State.Memory[addr] = value

	if mc.Tracer != nil {
		mc.Tracer.Write(addr, mc)
	}
}

func (mc *Machine) setFlags(value uint16) {
	if value == 0 {
		mc.State.Condition = FLAG_ZERO
	} else if value>>15 == 1 {
		mc.State.Condition = FLAG_NEG
	} else {
		mc.State.Condition = FLAG_POS
	}
}

func (mc *Machine) Step() {
	instruction := mc.read(mc.State.Program)
	opcode := instruction >> 12

	mc.State.Program++

	switch opcode {
	// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
	// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ADD:
		dest := (instruction >> 9) & 0x7
		src1 := (instruction >> 6) & 0x7

		if (instruction>>5)&0x1 == 1 {
			imm5 := encoding.SignExtend(instruction&0x1F, 5)

			mc.State.Registers[dest] = mc.State.Registers[src1] + imm5
		} else {
			src2 := (instruction & 0x7)

			mc.State.Registers[dest] = mc.State.Registers[src1] +
				mc.State.Registers[src2]
		}

		mc.setFlags(mc.State.Registers[dest])

	// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
	// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_AND:
		dest := (instruction >> 9) & 0x7
		src1 := (instruction >> 6) & 0x7

		if (instruction>>5)&0x1 == 1 {
			imm5 := encoding.SignExtend(instruction&0x1F, 5)

			mc.State.Registers[dest] = mc.State.Registers[src1] & imm5
		} else {
			src2 := (instruction & 0x7)

			mc.State.Registers[dest] = mc.State.Registers[src1] &
				mc.State.Registers[src2]
		}

		mc.setFlags(mc.State.Registers[dest])

	// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_BR:
		flags := (instruction >> 9) & 0x7

		// An empty mask matches nothing and the branch falls through
		if flags&mc.State.Condition > 0 {
			mc.State.Program += encoding.SignExtend(instruction&0x1FF, 9)
		}

	// JMP  |1100    |000  |BaseR|000000      | Jump
	// RET  |1100    |000  |111  |000000      | Return
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JMP:
		src := (instruction >> 6) & 0x7

		mc.State.Program = mc.State.Registers[src]

	// JSR  |0100    |1|PCoffset11            | Jump to subroutine
	// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JSR:
		mc.State.Registers[7] = mc.State.Program

		if (instruction>>11)&0x1 == 1 {
			mc.State.Program += encoding.SignExtend(instruction&0x7FF, 11)
		} else {
			src := (instruction >> 6) & 0x7

			mc.State.Program = mc.State.Registers[src]
		}

	// LD   |0010    |DR   |PCoffset9         | Load
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LD:
		dest := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.State.Registers[dest] = mc.read(addr)

		mc.setFlags(mc.State.Registers[dest])

	// LDI  |1010    |DR   |PCoffset9         | Load indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDI:
		dest := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.State.Registers[dest] = mc.read(mc.read(addr))

		mc.setFlags(mc.State.Registers[dest])

	// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LDR:
		dest := (instruction >> 9) & 0x7
		src := (instruction >> 6) & 0x7
		addr := mc.State.Registers[src] +
			encoding.SignExtend(instruction&0x3F, 6)

		mc.State.Registers[dest] = mc.read(addr)

		mc.setFlags(mc.State.Registers[dest])

	// LEA  |1110    |DR   |PCoffset9         | Load effective address
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LEA:
		dest := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.State.Registers[dest] = addr

		mc.setFlags(mc.State.Registers[dest])

	// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_NOT:
		dest := (instruction >> 9) & 0x7
		src := (instruction >> 6) & 0x7

		mc.State.Registers[dest] = ^mc.State.Registers[src]

		mc.setFlags(mc.State.Registers[dest])

	// ST   |0011    |SR   |PCoffset9         | Store
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ST:
		src := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.write(addr, mc.State.Registers[src])

	// STI  |1011    |SR   |PCoffset9         | Store indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STI:
		src := (instruction >> 9) & 0x7
		addr := mc.State.Program + encoding.SignExtend(instruction&0x1FF, 9)

		mc.write(mc.read(addr), mc.State.Registers[src])

	// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_STR:
		src := (instruction >> 9) & 0x7
		dest := (instruction >> 6) & 0x7
		addr := mc.State.Registers[dest] +
			encoding.SignExtend(instruction&0x3F, 6)

		mc.write(addr, mc.State.Registers[src])

	// TRAP |1111    |0000   |trapvect8       | Execute trap service
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_TRAP:
		mc.State.Registers[7] = mc.State.Program

		mc.trap(instruction & 0xFF)

	// RTI  |1000    |000000000000            | Return from interrupt (unused)
	// RES  |1101    |                        | Reserved (illegal)
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	default:
		panic(fmt.Sprintf(
			"illegal instruction %#04x at %#04x",
			instruction,
			mc.State.Program-1,
		))
	}

	if mc.Tracer != nil {
		mc.Tracer.Step(mc)
	}
}
