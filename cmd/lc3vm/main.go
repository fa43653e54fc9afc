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
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lassandro/lc3vm/pkg/machine"
)

var helpvar bool
var tracevar bool

const usage = "lc3vm [image-file] ..."

const (
	exitLoadFailure = 1
	exitUsage       = 2
	exitInterrupted = 254
)

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&tracevar, "trace", false, "Logs machine activity to stderr")
	flag.Parse()
}

func lc3vm() int {
	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) < 1 {
		log.Println(usage)
		return exitUsage
	}

	var mc machine.Machine
	var dh machine.DeviceHandler
	dh.Keyboard = terminalKeyboard{}
	dh.Display = bufio.NewWriter(os.Stdout)
	mc.Devices = &dh

	if tracevar {
		logrus.SetLevel(logrus.DebugLevel)
		mc.Tracer = stepTracer{}
	}

	mc.State.Reset()

	for _, path := range args {
		file, err := os.Open(path)

		if err != nil {
			log.Printf("failed to load image: %v", err)
			return exitLoadFailure
		}

		words, err := mc.LoadImage(file)
		file.Close()

		if err != nil {
			log.Printf("failed to load image: %s: %v", path, err)
			return exitLoadFailure
		}

		logrus.WithFields(logrus.Fields{
			"image": path,
			"words": words,
		}).Debug("image loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	enterRawTerm()
	defer exitRawTerm()

	for !mc.Halted {
		select {
		case <-ctx.Done():
			dh.Display.Flush()
			fmt.Println()
			return exitInterrupted
		default:
		}

		mc.Step()
	}

	dh.Display.Flush()

	return 0
}

func main() {
	os.Exit(lc3vm())
}
