package syncpipe

import "testing"

func TestSignalWait(t *testing.T) {
	sp, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer sp.Close()

	done := make(chan error, 1)
	go func() {
		done <- sp.Wait()
	}()

	if err := sp.Signal(); err != nil {
		t.Fatalf("Signal: %v", err)
	}

	if err := <-done; err != nil {
		t.Errorf("Wait: %v", err)
	}
}

func TestCloseEndsIndependently(t *testing.T) {
	sp, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := sp.CloseChild(); err != nil {
		t.Errorf("CloseChild: %v", err)
	}
	if err := sp.CloseParent(); err != nil {
		t.Errorf("CloseParent: %v", err)
	}
}
