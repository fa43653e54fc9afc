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
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lassandro/lc3vm/pkg/machine"
)

// stepTracer logs machine activity through logrus at debug level. It is
// only attached when -trace is given, so the instruction loop pays nothing
// otherwise.
type stepTracer struct{}

func (stepTracer) Step(mc *machine.Machine) {
	logrus.WithFields(logrus.Fields{
		"pc":   fmt.Sprintf("%#04x", mc.State.Program),
		"cond": fmt.Sprintf("%03b", mc.State.Condition),
	}).Debug("step")
}

func (stepTracer) Read(addr uint16, mc *machine.Machine) {
	logrus.WithFields(logrus.Fields{
		"addr":  fmt.Sprintf("%#04x", addr),
		"value": fmt.Sprintf("%#04x", mc.State.Memory[addr]),
	}).Debug("read")
}

func (stepTracer) Write(addr uint16, mc *machine.Machine) {
	logrus.WithFields(logrus.Fields{
		"addr":  fmt.Sprintf("%#04x", addr),
		"value": fmt.Sprintf("%#04x", mc.State.Memory[addr]),
	}).Debug("write")
}
