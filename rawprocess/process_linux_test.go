package rawprocess

import (
	"bytes"
	"os"
	"testing"

	"github.com/kornnellio/memtap/errors"
	"github.com/kornnellio/memtap/perms"
)

func TestOpenInvalidPid(t *testing.T) {
	if _, err := Open(0); !errors.IsKind(err, errors.ErrNoSuchProcess) {
		t.Errorf("Open(0) error = %v, want ErrNoSuchProcess", err)
	}
}

func TestOpenNonexistentPid(t *testing.T) {
	// A pid unlikely to exist.
	if _, err := Open(1 << 30); !errors.IsKind(err, errors.ErrNoSuchProcess) {
		t.Errorf("Open(huge pid) error = %v, want ErrNoSuchProcess", err)
	}
}

func TestOpenSelfIsLocal(t *testing.T) {
	proc, err := Open(os.Getpid())
	if err != nil {
		t.Fatalf("Open(self): %v", err)
	}
	if !proc.IsLocal() {
		t.Error("Open(self).IsLocal() = false, want true")
	}
	if proc.Pid() != os.Getpid() {
		t.Errorf("Pid() = %d, want %d", proc.Pid(), os.Getpid())
	}
}

func TestAllocateReadWriteFreeLocal(t *testing.T) {
	proc, err := Open(os.Getpid())
	if err != nil {
		t.Fatalf("Open(self): %v", err)
	}

	const size = 4096
	addr, err := proc.AllocateMemory(size, perms.Read|perms.Write)
	if err != nil {
		t.Fatalf("AllocateMemory: %v", err)
	}
	defer func() {
		if err := proc.FreeMemory(addr, size); err != nil {
			t.Errorf("FreeMemory: %v", err)
		}
	}()

	payload := bytes.Repeat([]byte{0x42}, 16)
	n, err := proc.WriteMemory(addr, payload)
	if err != nil {
		t.Fatalf("WriteMemory: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("WriteMemory wrote %d bytes, want %d", n, len(payload))
	}

	read, err := proc.ReadMemory(addr, len(payload))
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	if !bytes.Equal(read, payload) {
		t.Errorf("ReadMemory() = %v, want %v", read, payload)
	}
}
