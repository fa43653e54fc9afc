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

package main

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var termRestore unix.Termios
var termRaw bool

// enterRawTerm puts the terminal into unbuffered, no-echo mode for the
// duration of the run. Only ICANON and ECHO are cleared: reads stay
// blocking and the interrupt key still raises a signal. When stdin is not
// a terminal (images piped in, say) the terminal state is left alone.
func enterRawTerm() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	if err := termios.Tcgetattr(os.Stdin.Fd(), &termRestore); err != nil {
		panic(err)
	}

	termstate := termRestore
	termstate.Lflag &^= unix.ICANON | unix.ECHO

	if err := termios.Tcsetattr(
		os.Stdin.Fd(), termios.TCSANOW, &termstate,
	); err != nil {
		panic(err)
	}

	termRaw = true
}

func exitRawTerm() {
	if !termRaw {
		return
	}

	if err := termios.Tcsetattr(
		os.Stdin.Fd(), termios.TCSANOW, &termRestore,
	); err != nil {
		panic(err)
	}
}

// terminalKeyboard reads keys from stdin, with availability checked via a
// zero-timeout select so the status-register poll never waits.
type terminalKeyboard struct{}

func (terminalKeyboard) Poll() bool {
	fd := int(os.Stdin.Fd())

	var readfds unix.FdSet
	readfds.Set(fd)

	timeout := unix.Timeval{}

	n, err := unix.Select(fd+1, &readfds, nil, nil, &timeout)

	return err == nil && n != 0
}

func (terminalKeyboard) ReadByte() (byte, error) {
	var key [1]byte

	for {
		n, err := os.Stdin.Read(key[:])

		if err != nil {
			return 0, err
		}

		if n > 0 {
			return key[0], nil
		}
	}
}
