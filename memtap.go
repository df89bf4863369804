// Package memtap is a portable, low-level toolkit for reading, writing,
// allocating, freeing, and (locally) executing memory at chosen virtual
// addresses in the calling process or an arbitrary foreign process on the
// same Linux host, protected by explicit access permissions and bounds
// checks.
//
// Ordinary use only needs this package: Open a process, Allocate a block
// from it, then Read/Write/Execute against the returned Block.
package memtap

import (
	"github.com/kornnellio/memtap/layout"
	"github.com/kornnellio/memtap/memblock"
	"github.com/kornnellio/memtap/perms"
	"github.com/kornnellio/memtap/rawprocess"
)

// Permissions is the access-permission bitset granted to a memory block.
type Permissions = perms.Permissions

// Re-export the permission bits for callers that only import this
// package.
const (
	Read    = perms.Read
	Write   = perms.Write
	Execute = perms.Execute
	All     = perms.All
)

// Layout describes the size and alignment of a memory region.
type Layout = layout.Layout

// Block is a permissioned, bounds-checked view over a region of memory.
type Block = memblock.Block

// NewLayout returns a Layout with the given size and power-of-two
// alignment.
func NewLayout(size, align uint64) (Layout, error) {
	return layout.New(size, align)
}

// Process is a handle to a local or foreign process's address space.
//
// Process and the Blocks it allocates are not safe for concurrent use:
// every operation is synchronous and blocking, and nothing here serializes
// access across goroutines. A caller that shares a Process or Block across
// goroutines must provide its own locking.
type Process struct {
	raw rawprocess.RawProcess
}

// Open attaches a handle to pid's address space, local or foreign. The
// pid must exist at open time.
func Open(pid int) (*Process, error) {
	raw, err := rawprocess.Open(pid)
	if err != nil {
		return nil, err
	}
	return &Process{raw: raw}, nil
}

// Pid returns the target process ID.
func (p *Process) Pid() int {
	return p.raw.Pid()
}

// IsLocal reports whether this handle targets the calling process.
func (p *Process) IsLocal() bool {
	return p.raw.IsLocal()
}

// IsForeign reports whether this handle targets a different process than
// the caller.
func (p *Process) IsForeign() bool {
	return !p.raw.IsLocal()
}

// Allocate maps a new region matching l with the given permissions and
// returns a Block describing it.
func (p *Process) Allocate(l Layout, permissions Permissions) (*Block, error) {
	addr, err := p.raw.AllocateMemory(uintptr(l.Size), permissions)
	if err != nil {
		return nil, err
	}
	return memblock.New(p.raw, addr, l, permissions), nil
}
