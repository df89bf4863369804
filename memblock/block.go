// Package memblock provides Block, a permissioned, bounds-checked view
// over a region of memory in a local or foreign process.
package memblock

import (
	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/layout"
	"github.com/kornnellio/memtap/perms"
	"github.com/kornnellio/memtap/rawprocess"
)

// Block represents an allocated memory region in a process. It detects
// out-of-bounds access and rejects operations the block's permissions
// don't grant. A Block holds its RawProcess by interface value and never
// the reverse, so a process handle can outlive any number of blocks
// allocated from it without a cyclic reference.
type Block struct {
	process rawprocess.RawProcess
	addr    uintptr
	layout  layout.Layout
	perms   perms.Permissions
	freed   bool
}

// New wraps an already-allocated region as a Block. Callers normally reach
// this through Process.Allocate rather than constructing one directly.
func New(process rawprocess.RawProcess, addr uintptr, l layout.Layout, p perms.Permissions) *Block {
	return &Block{process: process, addr: addr, layout: l, perms: p}
}

// Len returns the size of the block in bytes.
func (b *Block) Len() uint64 { return b.layout.Size }

// Align returns the block's alignment.
func (b *Block) Align() uint64 { return b.layout.Align }

// Addr returns the block's base address.
func (b *Block) Addr() uintptr { return b.addr }

func (b *Block) inBounds(addr uintptr, size int) bool {
	start := b.addr
	end := start + uintptr(b.layout.Size)
	return addr >= start && addr+uintptr(size) <= end
}

func (b *Block) checkAlive(op string) error {
	if b.freed {
		return errors.WrapWithPid(errors.ErrBlockAlreadyFreed, errors.ErrBlockFreed, op, b.process.Pid())
	}
	return nil
}

// Read reads exactly n bytes from the start of the block.
func (b *Block) Read(n int) ([]byte, error) {
	if err := b.checkAlive("read"); err != nil {
		return nil, err
	}
	if !b.perms.Has(perms.Read) {
		return nil, errors.ErrNotReadable
	}
	if !b.inBounds(b.addr, n) {
		return nil, errors.ErrBoundsExceeded
	}
	return b.process.ReadMemory(b.addr, n)
}

// Write writes the full contents of data to the start of the block,
// returning the number of bytes written (always len(data) on success).
func (b *Block) Write(data []byte) (int, error) {
	if err := b.checkAlive("write"); err != nil {
		return 0, err
	}
	if !b.perms.Has(perms.Write) {
		return 0, errors.ErrNotWritable
	}
	if !b.inBounds(b.addr, len(data)) {
		return 0, errors.ErrBoundsExceeded
	}
	return b.process.WriteMemory(b.addr, data)
}

// Fill writes value to every byte in the block.
func (b *Block) Fill(value byte) (int, error) {
	buf := make([]byte, b.layout.Size)
	for i := range buf {
		buf[i] = value
	}
	return b.Write(buf)
}

// Clear zeroes the entire block.
func (b *Block) Clear() (int, error) {
	return b.Fill(0)
}

// CopyTo copies this block's entire contents into other.
func (b *Block) CopyTo(other *Block) (int, error) {
	data, err := b.Read(int(b.layout.Size))
	if err != nil {
		return 0, err
	}
	return other.Write(data)
}

// Deallocate frees the block's underlying memory. It is idempotent: a
// second call returns nil. Read, Write, Fill, Clear, CopyTo and Execute
// against a deallocated block return an ErrBlockFreed error.
func (b *Block) Deallocate() error {
	if b.freed {
		return nil
	}
	if err := b.process.FreeMemory(b.addr, uintptr(b.layout.Size)); err != nil {
		return err
	}
	b.freed = true
	return nil
}
