package memblock

import (
	"bytes"
	"os"
	"testing"

	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/layout"
	"github.com/kornnellio/memtap/perms"
	"github.com/kornnellio/memtap/rawprocess"
)

func newLocalBlock(t *testing.T, size uint64, p perms.Permissions) *Block {
	t.Helper()

	proc, err := rawprocess.Open(os.Getpid())
	if err != nil {
		t.Fatalf("rawprocess.Open(self): %v", err)
	}

	l, err := layout.New(size, 8)
	if err != nil {
		t.Fatalf("layout.New: %v", err)
	}

	addr, err := proc.AllocateMemory(uintptr(l.Size), p)
	if err != nil {
		t.Fatalf("AllocateMemory: %v", err)
	}

	b := New(proc, addr, l, p)
	t.Cleanup(func() {
		_ = b.Deallocate()
	})
	return b
}

func TestReadWriteRoundTrip(t *testing.T) {
	b := newLocalBlock(t, 64, perms.Read|perms.Write)

	payload := []byte("a memory block round trip")
	n, err := b.Write(payload)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("Write() = %d, want %d", n, len(payload))
	}

	got, err := b.Read(len(payload))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Read() = %q, want %q", got, payload)
	}
}

func TestFillAndClear(t *testing.T) {
	b := newLocalBlock(t, 16, perms.Read|perms.Write)

	if _, err := b.Fill(0x7a); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	got, err := b.Read(16)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := bytes.Repeat([]byte{0x7a}, 16)
	if !bytes.Equal(got, want) {
		t.Errorf("after Fill, Read() = %v, want %v", got, want)
	}

	if _, err := b.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err = b.Read(16)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, make([]byte, 16)) {
		t.Errorf("after Clear, Read() = %v, want all zero", got)
	}
}

func TestCopyTo(t *testing.T) {
	src := newLocalBlock(t, 32, perms.Read|perms.Write)
	dst := newLocalBlock(t, 32, perms.Read|perms.Write)

	if _, err := src.Fill(0x11); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if _, err := src.CopyTo(dst); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}

	got, err := dst.Read(32)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, bytes.Repeat([]byte{0x11}, 32)) {
		t.Errorf("dst contents after CopyTo = %v, want all 0x11", got)
	}
}

func TestPermissionDenied(t *testing.T) {
	b := newLocalBlock(t, 16, perms.Read)

	if _, err := b.Write([]byte("x")); !errors.IsKind(err, errors.ErrPermissionDenied) {
		t.Errorf("Write on read-only block error = %v, want ErrPermissionDenied", err)
	}

	b2 := newLocalBlock(t, 16, perms.Write)
	if _, err := b2.Read(4); !errors.IsKind(err, errors.ErrPermissionDenied) {
		t.Errorf("Read on write-only block error = %v, want ErrPermissionDenied", err)
	}
}

func TestOutOfBounds(t *testing.T) {
	b := newLocalBlock(t, 16, perms.Read|perms.Write)

	if _, err := b.Read(17); !errors.IsKind(err, errors.ErrOutOfBounds) {
		t.Errorf("Read(17) on a 16-byte block error = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.Write(make([]byte, 17)); !errors.IsKind(err, errors.ErrOutOfBounds) {
		t.Errorf("Write(17 bytes) on a 16-byte block error = %v, want ErrOutOfBounds", err)
	}
}

func TestDeallocateIsIdempotent(t *testing.T) {
	b := newLocalBlock(t, 16, perms.Read|perms.Write)

	if err := b.Deallocate(); err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	if err := b.Deallocate(); err != nil {
		t.Errorf("second Deallocate() = %v, want nil (idempotent)", err)
	}
	if _, err := b.Read(1); !errors.IsKind(err, errors.ErrBlockFreed) {
		t.Errorf("Read after Deallocate error = %v, want ErrBlockFreed", err)
	}
}

