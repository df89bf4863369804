// Package victim is the body of the helper process cross-process tests
// attach to. It has no main of its own: the test binary re-execs itself
// with a marker environment variable set, and TestMain hands off to Run
// instead of running the test suite, the standard Go idiom for spawning a
// real external process from within `go test` (the same trick the
// standard library uses for its own os/exec helper-process tests).
package victim

import (
	"os"

	"golang.org/x/sys/unix"
)

// EnvMarker is the environment variable a re-exec'd process checks to
// decide whether it should run Run instead of the test suite.
const EnvMarker = "MEMTAP_VICTIM"

// ReadyFD is the file descriptor, inherited from the parent via
// exec.Cmd.ExtraFiles, that Run writes one byte to once it is up and
// ready to be attached to.
const ReadyFD = 3

// Run signals readiness on the inherited pipe write end and then parks
// the process inside pause(2), giving a test a live, stable, attachable
// foreign PID that is genuinely blocked in a syscall rather than merely
// scheduler-parked — the same condition a trampoline call has to leave
// undisturbed when it attaches mid-syscall. pause() returns on any
// delivered signal, so it's called in a loop; it never completes
// naturally. The test is expected to kill the process when done.
func Run() {
	ready := os.NewFile(ReadyFD, "victim-ready")
	if ready != nil {
		_, _ = ready.Write([]byte{0})
		ready.Close()
	}

	for {
		_ = unix.Pause()
	}
}
