package perms

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestToProt(t *testing.T) {
	tests := []struct {
		name string
		p    Permissions
		want int32
	}{
		{"none", 0, unix.PROT_NONE},
		{"read", Read, unix.PROT_READ},
		{"read write", Read | Write, unix.PROT_READ | unix.PROT_WRITE},
		{"all", All, unix.PROT_READ | unix.PROT_WRITE | unix.PROT_EXEC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.ToProt(); got != tt.want {
				t.Errorf("ToProt() = %d, want %d", got, tt.want)
			}
		})
	}
}
