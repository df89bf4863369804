// Package ffi provides the typed, low-level Linux bindings the rest of
// this module builds on: the syscall-argument register mapping, the
// injected shellcode word, raw mmap/munmap, and the process-memory
// scatter/gather primitives. The ptrace calls themselves live in the
// tracer package, and rawprocess probes pids with kill(2) directly.
package ffi

// ErrnoWindow reports whether ret falls in the kernel's negative-errno
// window. A syscall issued through ptrace injection has no separate error
// channel: the kernel folds failure into the same return register a
// successful call would use, and any raw (unsigned, reinterpreted as
// signed) result in (-4096, 0) is an -errno rather than a real value.
func ErrnoWindow(ret int64) bool {
	return ret < 0 && ret > -4096
}
