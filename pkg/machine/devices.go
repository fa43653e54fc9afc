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
	"bufio"
	"io"
)

// ReaderKeyboard adapts any io.Reader into a Keyboard, reporting a key as
// available whenever a buffered byte can be peeked without blocking.
type ReaderKeyboard struct {
	reader *bufio.Reader
}

func NewReaderKeyboard(reader io.Reader) *ReaderKeyboard {
	return &ReaderKeyboard{reader: bufio.NewReader(reader)}
}

func (kb *ReaderKeyboard) Poll() bool {
	_, err := kb.reader.Peek(1)
	return err == nil
}

func (kb *ReaderKeyboard) ReadByte() (byte, error) {
	return kb.reader.ReadByte()
}
