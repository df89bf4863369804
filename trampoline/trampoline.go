// Package trampoline implements the foreign-syscall primitive this whole
// module is built around: hijacking a traced thread just long enough to
// make it issue one syscall on the caller's behalf, then putting it back
// exactly as it was.
package trampoline

import (
	"golang.org/x/sys/unix"

	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/ffi"
	"github.com/kornnellio/memtap/logging"
	"github.com/kornnellio/memtap/tracer"
)

// ForeignSyscall attaches to pid, injects a single syscall with the given
// number and up to six arguments, and returns its result. The sequence is:
//
//  1. attach and wait for the initial stop
//  2. snapshot the current registers and the instruction-pointer code word
//  3. load the syscall number and arguments into the register frame
//  4. poke the shellcode word at the instruction pointer
//  5. single-step until the expected SIGTRAP stop, re-stepping after a
//     SIGSTOP stop; any other stop, or the tracee exiting, aborts the call
//  6. read the result out of the return register
//  7. unconditionally restore the saved code word and registers, then
//     detach — this step always runs, on every exit path, via a deferred
//     guard, regardless of whether steps 1-6 succeeded
//
// Restore failures are logged and swallowed unless the call had otherwise
// succeeded, in which case they are surfaced as the returned error.
func ForeignSyscall(pid int, nr uintptr, argv [6]uintptr) (result int64, err error) {
	args := ffi.SyscallArgs{
		Nr: nr,
		A0: argv[0], A1: argv[1], A2: argv[2], A3: argv[3], A4: argv[4], A5: argv[5],
	}

	if err := tracer.Attach(pid); err != nil {
		return 0, err
	}

	savedRegs, err := tracer.GetRegs(pid)
	if err != nil {
		_ = tracer.Detach(pid)
		return 0, err
	}

	ip := ffi.InstructionPointer(&savedRegs)
	savedCode, err := tracer.PeekText(pid, ip)
	if err != nil {
		_ = tracer.Detach(pid)
		return 0, err
	}

	defer func() {
		restoreErr := restore(pid, ip, savedCode, savedRegs)
		if restoreErr == nil {
			return
		}
		if err == nil {
			err = restoreErr
			return
		}
		logger := logging.WithPID(logging.WithAddr(logging.Default(), ip), pid)
		logger.Error("foreign syscall restore failed after an earlier error",
			"original_error", err, "restore_error", restoreErr)
	}()

	workingRegs := savedRegs
	args.ApplyTo(&workingRegs)
	if setErr := tracer.SetRegs(pid, workingRegs); setErr != nil {
		return 0, setErr
	}

	if pokeErr := tracer.PokeText(pid, ip, ffi.ShellcodeWord); pokeErr != nil {
		return 0, pokeErr
	}

	if stepErr := tracer.SingleStep(pid); stepErr != nil {
		return 0, stepErr
	}

	if waitErr := awaitTrap(pid); waitErr != nil {
		return 0, waitErr
	}

	resultRegs, getErr := tracer.GetRegs(pid)
	if getErr != nil {
		return 0, getErr
	}

	return ffi.ReadFrom(&resultRegs), nil
}

// awaitTrap waits for the single-stepped instruction to land. A SIGTRAP
// stop means the injected syscall+int3 executed and succeeds immediately.
// The kernel sometimes delivers a spurious SIGSTOP first; that case
// re-issues the single-step and waits again. Any other stopping signal,
// or the tracee exiting or dying by signal, aborts the call.
func awaitTrap(pid int) error {
	for {
		status, err := tracer.WaitStop(pid)
		if err != nil {
			return err
		}
		if status.Exited() || status.Signaled() {
			return errors.WrapWithPid(errors.ErrProcessGone, errors.ErrUnexpectedTermination, "foreignsyscall", pid)
		}
		if !status.Stopped() {
			return errors.WrapWithPid(errors.ErrTraceStopped, errors.ErrUnexpectedStop, "foreignsyscall", pid)
		}
		switch status.StopSignal() {
		case unix.SIGTRAP:
			return nil
		case unix.SIGSTOP:
			if err := tracer.SingleStep(pid); err != nil {
				return err
			}
			continue
		default:
			return errors.WrapWithPid(errors.ErrTraceStopped, errors.ErrUnexpectedStop, "foreignsyscall", pid)
		}
	}
}

func restore(pid int, ip uintptr, code uint64, regs unix.PtraceRegs) error {
	if err := tracer.PokeText(pid, ip, code); err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "restore", pid)
	}
	if err := tracer.SetRegs(pid, regs); err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "restore", pid)
	}
	if err := tracer.Detach(pid); err != nil {
		return errors.WrapWithPid(err, errors.ErrKernel, "restore", pid)
	}
	return nil
}
