// This file is part of xrambus.
//
// xrambus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xrambus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with xrambus.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"

	xterm "golang.org/x/term"

	"github.com/jetsetilly/xrambus/govern"
	"github.com/jetsetilly/xrambus/hardware"
	"github.com/jetsetilly/xrambus/hardware/injector"
	"github.com/jetsetilly/xrambus/hardware/preferences"
	"github.com/jetsetilly/xrambus/input"
	"github.com/jetsetilly/xrambus/logger"
	"github.com/jetsetilly/xrambus/modalflag"
	"github.com/jetsetilly/xrambus/paths"
	"github.com/jetsetilly/xrambus/prefs"
	"github.com/jetsetilly/xrambus/probe"
	"github.com/jetsetilly/xrambus/script"
	"github.com/jetsetilly/xrambus/statsview"
	"github.com/jetsetilly/xrambus/version"
)

// the number of log entries printed when the program ends with an error
const logTailOnError = 10

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PORTS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PORTS":
		err = showPorts(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		logger.Tail(os.Stderr, logTailOnError)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverride := md.AddString("prefs", "", "preferences for this run only (key::value; key::value)")
	serialDev := md.AddString("serial", "", "read injector input from serial device instead of the keyboard")
	baud := md.AddInt("baud", input.DefaultBaudRate, "baud rate of serial device")
	probeFile := md.AddString("probe", "", "record bus activity to wav file (AUTO for a generated filename)")
	memvizFile := md.AddString("memviz", "", "write graphviz diagram of bus controller registers to file on exit")
	maxCycles := md.AddUint64("maxcycles", 0, "stop after number of cycles (0 for no limit)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("The firmware is a Lua script defining a step() function. It is called\nonce per cycle and drives the ports of the microcontroller.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("firmware script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	firmware := md.GetArg(0)

	pref, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	xcfg, err := pref.XRAM()
	if err != nil {
		return err
	}

	icfg, err := pref.Injector()
	if err != nil {
		return err
	}

	eng := script.NewEngine(os.Stdout)
	defer eng.Close()

	err = eng.LoadFile(firmware)
	if err != nil {
		return err
	}

	src, closeSrc, err := injectorSource(*serialDev, *baud)
	if err != nil {
		return err
	}
	defer closeSrc()

	sys, err := hardware.NewSystem(eng, xcfg, icfg, src)
	if err != nil {
		return err
	}

	if *probeFile != "" {
		fn := *probeFile
		if strings.ToUpper(fn) == "AUTO" {
			name := strings.TrimSuffix(filepath.Base(firmware), filepath.Ext(firmware))
			fn = paths.UniqueFilename("probe", name, "wav")
		}

		pr, err := probe.NewProbe(fn)
		if err != nil {
			return err
		}
		defer func() {
			err := pr.Close()
			if err != nil && rerr == nil {
				rerr = err
			}
		}()

		sys.AttachProbe(pr)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	// the signal handler only sets the interrupted flag. the flag is checked
	// by the run loop on every cycle
	var interrupted atomic.Bool

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(intChan)

	done := make(chan bool)
	defer close(done)

	go func() {
		select {
		case <-intChan:
			interrupted.Store(true)
		case <-done:
		}
	}()

	logger.Logf(logger.Allow, "xrambus", "running %s", firmware)

	err = sys.Run(func() (govern.State, error) {
		if interrupted.Load() {
			return govern.Ending, nil
		}
		if *maxCycles > 0 && sys.Cycle() >= *maxCycles {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})

	if interrupted.Load() {
		fmt.Println("\rsignal caught, terminating")
	}

	logger.Logf(logger.Allow, "xrambus", "stopped after %d cycles (%s)", sys.Cycle(), sys.Status())

	if *memvizFile != "" {
		f, ferr := os.Create(*memvizFile)
		if ferr != nil {
			return ferr
		}
		sys.XRAM.Visualise(f)
		if ferr = f.Close(); ferr != nil {
			return ferr
		}
	}

	return err
}

// injectorSource chooses the input for the injector. A serial device is used
// if one has been named. Otherwise the keyboard is used if the standard input
// is a terminal, and the standard input itself if it is not.
func injectorSource(serialDev string, baud int) (injector.Source, func(), error) {
	if serialDev != "" {
		ser, err := input.NewSerial(serialDev, baud)
		if err != nil {
			return nil, nil, err
		}
		return ser, func() { _ = ser.Close() }, nil
	}

	if xterm.IsTerminal(int(os.Stdin.Fd())) {
		kb, err := input.NewKeyboard(input.DefaultKeyboard)
		if err != nil {
			return nil, nil, err
		}
		return kb, func() { _ = kb.Close() }, nil
	}

	return input.NewReader(os.Stdin), func() {}, nil
}

func showPorts(md *modalflag.Modes) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "preferences to apply before showing the mapping (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	pref, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	xcfg, err := pref.XRAM()
	if err != nil {
		return err
	}

	icfg, err := pref.Injector()
	if err != nil {
		return err
	}

	fmt.Print(xcfg)
	fmt.Printf("poll interval: %d cycles\n", icfg.Interval)
	fmt.Printf("hotkeys:       %s\n", injector.FormatHotkeys(icfg.Hotkeys))

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
