package session

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/helmutg/tcvt/internal/canvas"
	"github.com/helmutg/tcvt/internal/grid"
	"github.com/helmutg/tcvt/internal/termquery"
	"github.com/helmutg/tcvt/internal/vtparse"
)

// refreshCoalesceWindow bounds how long output can accumulate before the
// loop forces a Refresh, so a flood of child output doesn't starve the
// screen indefinitely but also doesn't repaint on every single byte.
const refreshCoalesceWindow = 100 * time.Millisecond

// EventLoop is the single-threaded cooperative loop: it selects over the
// keyboard fd, the PTY fd, and a self-pipe fed by SIGWINCH, feeding PTY
// bytes to the parser and keyboard input to the child. The only concurrent
// actor besides this loop is the child process itself and the tiny signal-
// forwarding goroutine started by Attach.
type EventLoop struct {
	sess     *Session
	root     canvas.Canvas
	keyboard canvas.Keyboard
	keys     map[termquery.Key][]byte
	graphics map[byte]rune

	numColumns  int
	devMode     bool
	columnsMode bool

	grid   grid.Grid
	parser *vtparse.Parser

	sigR, sigW *os.File
	winch      chan os.Signal
}

// NewEventLoop builds the active grid over root, starting in Columns mode
// at numColumns (falling back to Simple if the terminal is too narrow to
// host them). The loop is not runnable yet — call Size to learn the
// logical grid size the child's PTY must be started at, then Attach the
// started Session before calling Run.
func NewEventLoop(root canvas.Canvas, keyboard canvas.Keyboard, boot *termquery.Bootstrapped, numColumns int, devMode bool) *EventLoop {
	el := &EventLoop{
		root: root, keyboard: keyboard,
		keys: boot.Keys, graphics: boot.Graphics,
		numColumns: numColumns, devMode: devMode,
	}
	el.buildGrid(numColumns)
	return el
}

// Size returns the active grid's logical (rows, cols) — what the child's
// PTY must be sized to via TIOCSWINSZ.
func (el *EventLoop) Size() (rows, cols int) {
	return el.grid.MaxYX()
}

// Attach wires an already-started Session into the loop and starts
// forwarding SIGWINCH into the select-based loop's self-pipe. Call this
// once, after Size has been used to start sess at the right PTY size.
func (el *EventLoop) Attach(sess *Session) error {
	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("session: open signal pipe: %w", err)
	}
	el.sess = sess
	el.sigR, el.sigW = r, w
	el.winch = make(chan os.Signal, 1)

	signal.Notify(el.winch, syscall.SIGWINCH)
	go el.forwardSignals()
	return nil
}

// forwardSignals turns SIGWINCH delivery into fd readiness (the classic
// self-pipe trick), so the select-based loop below can treat a resize
// exactly like any other ready fd instead of needing OS-level EINTR
// handling, which Go's runtime does not surface to user code.
func (el *EventLoop) forwardSignals() {
	for range el.winch {
		el.sigW.Write([]byte{0})
	}
}

// buildGrid (re)builds the active grid over the root canvas at its current
// physical size, preferring Columns at n but falling back to Simple if n
// columns would not fit.
func (el *EventLoop) buildGrid(n int) {
	cols, err := grid.NewColumns(el.root, n)
	if err != nil {
		el.root.ScrollOk(true)
		el.grid = grid.NewSimple(el.root)
		el.columnsMode = false
	} else {
		el.grid = cols
		el.columnsMode = true
	}
	el.parser = vtparse.New(el.grid, el.graphics)
	el.parser.Bell = el.root.Beep
}

// resized rebuilds the active grid after a physical terminal resize and
// pushes the new logical size down to the child via TIOCSWINSZ. It always
// retries the configured column count first, ignoring any prior manual
// mode toggle, falling back to Simple only if that no longer fits.
func (el *EventLoop) resized() error {
	el.buildGrid(el.numColumns)
	rows, cols := el.grid.MaxYX()
	return el.sess.Resize(rows, cols)
}

// toggleMode flips between Columns and Simple on the reserved mode key.
func (el *EventLoop) toggleMode() error {
	if el.columnsMode {
		// n == 0 never yields a Columns grid, so buildGrid installs Simple.
		el.buildGrid(0)
	} else {
		el.buildGrid(el.numColumns)
	}
	rows, cols := el.grid.MaxYX()
	return el.sess.Resize(rows, cols)
}

// Run drives the loop until the child exits or an unrecoverable error
// occurs. It returns nil on ordinary child exit.
func (el *EventLoop) Run() error {
	ptyFD := int(el.sess.Fd())
	sigFD := int(el.sigR.Fd())
	const stdinFD = 0

	maxFD := ptyFD
	if sigFD > maxFD {
		maxFD = sigFD
	}

	var refreshDeadline time.Time
	pendingRefresh := false
	ptyBuf := make([]byte, 4096)
	drain := make([]byte, 64)

	for {
		var timeout *unix.Timeval
		if pendingRefresh {
			d := time.Until(refreshDeadline)
			if d < 0 {
				d = 0
			}
			tv := unix.NsecToTimeval(d.Nanoseconds())
			timeout = &tv
		}

		var rfds unix.FdSet
		fdZero(&rfds)
		fdSet(stdinFD, &rfds)
		fdSet(ptyFD, &rfds)
		fdSet(sigFD, &rfds)

		n, err := unix.Select(maxFD+1, &rfds, nil, nil, timeout)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("session: select: %w", err)
		}

		if n == 0 {
			el.grid.Refresh()
			pendingRefresh = false
			continue
		}

		if fdIsSet(sigFD, &rfds) {
			el.sigR.Read(drain)
			if err := el.resized(); err != nil {
				return err
			}
		}

		if fdIsSet(stdinFD, &rfds) {
			for {
				key, ok := el.keyboard.GetChar()
				if !ok {
					break
				}
				if err := el.handleKey(key); err != nil {
					return err
				}
			}
		}

		if fdIsSet(ptyFD, &rfds) {
			m, rerr := el.sess.Read(ptyBuf)
			if m == 0 && rerr != nil {
				el.grid.Refresh()
				return nil
			}
			for i := 0; i < m; i++ {
				if ferr := el.parser.Feed(ptyBuf[i]); ferr != nil {
					if el.devMode {
						return fmt.Errorf("session: parse error: %w", ferr)
					}
					el.parser.Reset()
				}
			}
			if !pendingRefresh {
				refreshDeadline = time.Now().Add(refreshCoalesceWindow)
				pendingRefresh = true
			}
		}

		if pendingRefresh && !time.Now().Before(refreshDeadline) {
			el.grid.Refresh()
			pendingRefresh = false
		}
	}
}

// handleKey dispatches one raw keyboard code: the reserved mode toggle, a
// symbolic key resolved through the terminfo table, a plain byte forwarded
// verbatim, or — in dev mode only — a hard failure on anything else so an
// unmapped key surfaces immediately during development instead of being
// silently swallowed.
func (el *EventLoop) handleKey(key int) error {
	if key == modeToggleKey {
		return el.toggleMode()
	}
	if sym, ok := symbolicKey(key); ok {
		if seq, ok := el.keys[sym]; ok {
			_, err := el.sess.Write(seq)
			return err
		}
		return nil
	}
	if key >= 0 && key <= 0xFF {
		_, err := el.sess.Write([]byte{byte(key)})
		return err
	}
	if el.devMode {
		return fmt.Errorf("session: unmapped key code %d", key)
	}
	return nil
}

// Close tears down the signal forwarding and the underlying session.
func (el *EventLoop) Close() error {
	signal.Stop(el.winch)
	el.sigW.Close()
	el.sigR.Close()
	return el.sess.Close()
}

func fdZero(set *unix.FdSet) {
	for i := range set.Bits {
		set.Bits[i] = 0
	}
}

func fdSet(fd int, set *unix.FdSet) {
	set.Bits[fd/64] |= 1 << uint(fd%64)
}

func fdIsSet(fd int, set *unix.FdSet) bool {
	return set.Bits[fd/64]&(1<<uint(fd%64)) != 0
}
