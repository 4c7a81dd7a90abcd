package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aesop-editor/aesop/internal/editor"
	"github.com/aesop-editor/aesop/internal/term"
)

var demo = flag.Bool("demo", false, "run a static welcome screen until q/Esc/Ctrl-C")
var logpath = flag.String("log", "", "log to file")

func main() {
	flag.Usage = printUsage
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if *logpath != "" {
		logFile, err := os.Create(*logpath)
		if err != nil {
			exitWithError(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(ioutil.Discard)
	}

	path := flag.Arg(0)
	if err := runEditor(path, *demo); err != nil {
		exitWithError(err)
	}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] [path]\n", os.Args[0])
	flag.PrintDefaults()
}

func runEditor(path string, demo bool) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return term.ErrNotATerminal
	}

	size, err := term.GetSize(fd)
	if err != nil {
		return err
	}

	rawState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Release(rawState)

	ed, err := editor.New(os.Stdout, path, demo, size.Rows, size.Cols, time.Now())
	if err != nil {
		return err
	}

	if err := ed.Writer.EnterAltScreen(); err != nil {
		return err
	}
	defer ed.Writer.ExitAltScreen()
	defer ed.Writer.Flush()

	resized := make(chan os.Signal, 1)
	signal.Notify(resized, syscall.SIGWINCH)
	defer signal.Stop(resized)

	buf := make([]byte, 4096)
	for !ed.Quit() {
		select {
		case <-resized:
			if newSize, err := term.GetSize(fd); err == nil {
				ed.HandleResize(newSize.Rows, newSize.Cols)
			}
		default:
		}

		if err := ed.Render(); err != nil {
			return err
		}

		// With VMIN=0/VTIME=3 an idle read returns no bytes, which
		// os.File reports as io.EOF; that is a poll timeout, not an error.
		n, err := os.Stdin.Read(buf)
		if err != nil && err != io.EOF {
			return err
		}
		if n > 0 {
			ed.HandleInputBytes(buf[:n], time.Now())
		}

		time.Sleep(editor.TickSleep)
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
