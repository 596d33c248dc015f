// This file is part of Atom.
//
// Atom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Atom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Atom.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fpedrolucas95/Atom/driver"
	"github.com/fpedrolucas95/Atom/gui/console"
	"github.com/fpedrolucas95/Atom/hardware/hostport"
	"github.com/fpedrolucas95/Atom/hardware/i8042"
	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/logger"
	"github.com/fpedrolucas95/Atom/modalflag"
	"github.com/fpedrolucas95/Atom/performance"
	"github.com/fpedrolucas95/Atom/prefs"
	"github.com/fpedrolucas95/Atom/recorder"
	"github.com/fpedrolucas95/Atom/statsview"
	"github.com/fpedrolucas95/Atom/terminal"
	"github.com/fpedrolucas95/Atom/version"
)

type stateReq string

const (
	// the main thread should finish at the first opportunity.
	//
	// the optional int argument is used as the status code for os.Exit().
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the TERM mode puts the controlling
	// terminal into raw mode and sees ctrl-c as a plain byte.
	//
	// no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator is the part of a gui that the main thread is responsible for.
// There is no Create() function in the interface. Each mode builds its gui
// its own way and posts the finished build as a function on the creator
// channel, leaving the main thread in control of when the build runs.
type GuiCreator interface {
	// release everything the gui holds. complaints raised during the
	// teardown are written to the supplied writer
	Destroy(io.Writer)

	// Service handles whatever window system events are waiting. It is
	// called repeatedly from the main loop and must return promptly, without
	// pausing or blocking.
	Service()
}

// mainSync connects the launch() goroutine back to the main thread. SDL
// insists on window creation and event handling happening in the thread the
// program started in, so those jobs are posted here instead of being done
// in place.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// exactly one of these two channels answers each function sent on the
	// creator channel.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the status code eventually handed to os.Exit(). a reqQuit request can
	// supply a different value
	exitVal := 0

	// default ctrl-c handling. a reqNoIntSig request turns this off
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// the program proper runs in a goroutine. everything it needs from the
	// main thread arrives through sync
	go launch(sync)

	// each pass of the loop attends to the interrupt signal, any gui waiting
	// to be built and any state request. when none of those are ready the
	// current gui, if there is one, has its Service() function called
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// the new gui replaces any existing one
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// make sure the gui variable is a true nil. the nil
				// returned by creator() does not compare equal to nil once
				// it has been stored in a variable of interface type
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("%s argument must be an int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s takes no arguments", reqNoIntSig))
				}
			}

		default:
			// if the launch() goroutine has sent us a gui then call Service()
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected sub-mode. It is
// started from main() as a goroutine and talks back through the mainSync
// instance.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "TERM":
		err = term(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	hw := md.AddBool("hw", false, "drive the host's own controller through /dev/port (requires root)")
	playback := md.AddString("playback", "", "replay a previously recorded transcript")
	record := md.AddString("record", "", "record port traffic to a transcript file")
	mouse := md.AddBool("mouse", true, "run the mouse handshake before decoding begins")
	log := md.AddBool("log", false, "echo the debugging log to stdout")
	stats := md.AddBool("stats", false, "launch stats server (requires the statsview build tag)")
	prefVals := md.AddString("prefs", "", `preference values for the session: "key::value; key::value"`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// echo the debugging log as it happens
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	if *prefVals != "" {
		prefs.PushCommandLineStack(*prefVals)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments required for %s mode", md)
	}

	if *hw && *playback != "" {
		return fmt.Errorf("the -hw and -playback flags cannot be mixed")
	}

	// choose the byte source. the emulated controller is the only source
	// that can accept input from the console window, so it doubles as the
	// injection target
	var port ps2.Port
	var con *i8042.Controller

	switch {
	case *hw:
		dev, err := hostport.NewDevice()
		if err != nil {
			return err
		}
		defer dev.Close()
		port = dev

	case *playback != "":
		plb, err := recorder.NewPlayback(*playback)
		if err != nil {
			return err
		}
		port = plb

	default:
		con = i8042.NewController()
		port = con
	}

	// the tap sits between the driver and the real source so that every
	// transaction is seen
	var tap *recorder.Tap
	if *record != "" {
		tap, err = recorder.NewTap(port, *record)
		if err != nil {
			return err
		}
		port = tap
	}

	// decoded events cross from the driver goroutine to the console through
	// the queue
	events := input.NewQueue(256)

	drv, err := driver.NewDriver(port, events, nil)
	if err != nil {
		return err
	}
	drv.Keyboard.DecodeExtended = true

	// check use of command line preferences. the driver has loaded its
	// values by now so anything left on the stack was never asked for
	if s := prefs.PopCommandLineStack(); s != "" {
		logger.Logf("prefs", "%s unused", s)
	}

	// the emulated controller says when bytes arrive. the other sources are
	// drained on the wake interval
	if con != nil {
		con.SetNotify(drv.Wake)
	}

	var inj console.Injector
	if con != nil {
		inj = con
	}

	// hand the console build over to the main thread and wait for the
	// result
	sync.creator <- func() (GuiCreator, error) {
		return console.NewConsole(events, inj)
	}

	var scr *console.Console
	select {
	case g := <-sync.creation:
		scr = g.(*console.Console)
	case err := <-sync.creationError:
		return err
	}

	// the handshake writes to the port so a transcript recorded without it
	// will not replay through it
	if *mouse {
		err = drv.InitMouse()
		if err != nil {
			return err
		}
	}

	quit := scr.Quit()
	err = drv.Run(func() (bool, error) {
		select {
		case <-quit:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	if tap != nil {
		err = tap.End()
		if err != nil {
			return err
		}
		fmt.Println("! recording completed")
	}

	return nil
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "dump the debugging log when the session ends")
	prefVals := md.AddString("prefs", "", `preference values for the session: "key::value; key::value"`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *prefVals != "" {
		prefs.PushCommandLineStack(*prefVals)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments required for %s mode", md)
	}

	con := i8042.NewController()

	trm, err := terminal.NewTerminal(con)
	if err != nil {
		return err
	}

	drv, err := driver.NewDriver(con, trm, nil)
	if err != nil {
		return err
	}
	con.SetNotify(drv.Wake)

	// check use of command line preferences
	if s := prefs.PopCommandLineStack(); s != "" {
		logger.Logf("prefs", "%s unused", s)
	}

	// once the session is in raw mode ctrl-c arrives as a plain byte and
	// the terminal ends the session itself. turn off the fallback handling
	// so the two cannot fight
	sync.state <- stateRequest{req: reqNoIntSig}

	// the terminal blocks on the controlling tty so it gets a goroutine of
	// its own. the session is over when it returns
	endTerm := make(chan error, 1)
	go func() {
		endTerm <- trm.Run()
	}()

	err = drv.Run(func() (bool, error) {
		select {
		case err := <-endTerm:
			return false, err
		default:
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	// echoing the log during the session would garble the raw mode display
	if *log {
		logger.Write(md.Output)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write cpu and memory profiles to the working directory")
	dump := md.AddBool("dump", false, "dump a graph of the driver state after the run")
	log := md.AddBool("log", false, "echo the debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// echo the debugging log as it happens
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments required for %s mode", md)
	}

	return performance.Check(md.Output, *profile, *dump, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, version.Version)

	return nil
}
