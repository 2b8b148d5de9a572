// Package session owns the PTY-backed child process and the single-
// threaded cooperative event loop that pumps bytes between it and the
// active grid.
package session

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Session wraps a child process running under a PTY, grounded on the
// teacher's Start/Read/Write/Resize/Close/Done lifecycle shape but trimmed
// to plain byte plumbing: no activity classification, no token scanning,
// no kitty-keyboard handshake — none of those have a counterpart in this
// system's scope.
type Session struct {
	ptmx *os.File
	cmd  *exec.Cmd
	done chan struct{}

	exitCode int
	waitErr  error
}

// Start spawns argv (or $SHELL with no args) under a new PTY sized
// (rows, cols), with TERM forced to ansi in the child's environment the
// way the startup sequence requires.
func Start(argv []string, rows, cols int) (*Session, error) {
	if len(argv) == 0 {
		shell := os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
		argv = []string{shell}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = append(envWithoutTerm(os.Environ()), "TERM=ansi")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("session: start pty: %w", err)
	}

	s := &Session{ptmx: ptmx, cmd: cmd, done: make(chan struct{})}
	go s.waitLoop()
	return s, nil
}

func envWithoutTerm(env []string) []string {
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if len(kv) >= 5 && kv[:5] == "TERM=" {
			continue
		}
		out = append(out, kv)
	}
	return out
}

func (s *Session) waitLoop() {
	s.waitErr = s.cmd.Wait()
	if s.cmd.ProcessState != nil {
		s.exitCode = s.cmd.ProcessState.ExitCode()
	} else if s.waitErr != nil {
		s.exitCode = 1
	}
	close(s.done)
}

// Read reads up to len(p) bytes of child output.
func (s *Session) Read(p []byte) (int, error) {
	return s.ptmx.Read(p)
}

// Write sends keyboard input to the child.
func (s *Session) Write(p []byte) (int, error) {
	return s.ptmx.Write(p)
}

// Fd returns the PTY master file descriptor, for the event loop's select
// set.
func (s *Session) Fd() uintptr {
	return s.ptmx.Fd()
}

// Resize propagates a new logical size to the PTY via TIOCSWINSZ.
func (s *Session) Resize(rows, cols int) error {
	return pty.Setsize(s.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Close kills the child, closes the PTY, and waits for the process to
// finish exiting.
func (s *Session) Close() error {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	err := s.ptmx.Close()
	<-s.done
	return err
}

// Done returns a channel closed when the child process exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// ExitCode returns the child's exit code; valid only after Done is closed.
func (s *Session) ExitCode() int {
	return s.exitCode
}
