// tcvt splits a terminal into fixed-width side-by-side columns and runs a
// single child program across them, so output that scrolls fast stays
// readable a screenful at a time instead of racing off the top.
//
// Stack: Go · goncurses · tcell/terminfo · creack/pty
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/helmutg/tcvt/internal/attr"
	"github.com/helmutg/tcvt/internal/canvas"
	"github.com/helmutg/tcvt/internal/config"
	"github.com/helmutg/tcvt/internal/session"
	"github.com/helmutg/tcvt/internal/termquery"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	tcvtArgs, childArgv := config.SplitArgv(os.Args[1:])
	opts, err := config.ParseArgs(tcvtArgs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	numColumns := cfg.NumColumns
	if opts.Columns > 0 {
		numColumns = opts.Columns
	}

	devMode := cfg.Devel || os.Getenv("TCVT_DEVEL") != ""

	argv := childArgv
	if len(argv) == 0 && cfg.DefaultShell != "" {
		argv = []string{cfg.DefaultShell}
	}

	boot, err := termquery.Bootstrap()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tcvt:", err)
		return 1
	}

	root, teardown, err := canvas.Init()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tcvt:", err)
		return 1
	}
	defer teardown()

	if err := initColorPairs(root); err != nil {
		log.Println("tcvt: color init:", err)
	}

	keyboard, _ := root.(canvas.Keyboard)

	// Construct the grid first, then push its logical max_yx() as the
	// child's initial winsize, the same order tcvt.py's main() follows.
	loop := session.NewEventLoop(root, keyboard, boot, numColumns, devMode)
	rows, cols := loop.Size()

	sess, err := session.Start(argv, rows, cols)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tcvt: exec failed:", err)
		return 1
	}

	if err := loop.Attach(sess); err != nil {
		fmt.Fprintln(os.Stderr, "tcvt:", err)
		_ = sess.Close()
		return 1
	}

	runErr := loop.Run()
	_ = loop.Close()

	if runErr != nil {
		teardown()
		fmt.Fprintln(os.Stderr, "tcvt:", runErr)
		return 1
	}

	return sess.ExitCode()
}

// initColorPairs allocates the 63 non-default color pairs the attribute
// model assumes are already live before the parser applies its first SGR
// color code.
func initColorPairs(root canvas.Canvas) error {
	alloc, ok := root.(canvas.ColorAllocator)
	if !ok {
		return nil
	}
	if err := alloc.StartColor(); err != nil {
		return err
	}
	for _, pc := range attr.EnumeratePairs() {
		if err := alloc.InitPair(pc.Pair, pc.FG, pc.BG); err != nil {
			return err
		}
	}
	return nil
}
