// Package rawprocess provides the RawProcess contract: the minimal set of
// cross-space memory operations a memory block is built from, implemented
// per-platform and dispatched by build tag.
package rawprocess

import "github.com/kornnellio/memtap/perms"

// RawProcess is a handle to a process's address space, local or foreign.
// It holds no kernel resource of its own: the handle keeps only the pid,
// and every method talks to the kernel directly with it, much like the
// pid-taking functions of the tracer package.
type RawProcess interface {
	// Pid returns the target process ID.
	Pid() int
	// IsLocal reports whether this handle targets the calling process.
	IsLocal() bool

	// ReadMemory reads exactly n bytes starting at addr.
	ReadMemory(addr uintptr, n int) ([]byte, error)
	// WriteMemory writes data starting at addr, returning the number of
	// bytes written. A short write is a hard error, never retried.
	WriteMemory(addr uintptr, data []byte) (int, error)

	// AllocateMemory maps size bytes with the given permissions and
	// returns the address of the new mapping.
	AllocateMemory(size uintptr, permissions perms.Permissions) (uintptr, error)
	// FreeMemory unmaps the size-byte region starting at addr.
	FreeMemory(addr, size uintptr) error
}
