//go:build windows

package main

import (
	"fmt"
	"os"
	"testing"
)

func TestNamedInstanceLockExcludesSecondHolder(t *testing.T) {
	name := fmt.Sprintf(`Local\AquaLandTest-%d`, os.Getpid())

	first, lockedByOther, err := acquireNamedInstanceLock(name)
	if err != nil || lockedByOther || first == nil {
		t.Fatalf("expected first acquire to succeed, got lock=%v other=%v err=%v", first, lockedByOther, err)
	}

	second, lockedByOther, err := acquireNamedInstanceLock(name)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if !lockedByOther || second != nil {
		t.Fatalf("expected second acquire to report another holder")
	}

	if err := first.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	third, lockedByOther, err := acquireNamedInstanceLock(name)
	if err != nil || lockedByOther {
		t.Fatalf("expected reacquire after release, got other=%v err=%v", lockedByOther, err)
	}
	_ = third.Release()
}
