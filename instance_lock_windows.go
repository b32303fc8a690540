//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// Named mutex shared by every Aqua Land process in the login session.
const instanceMutexName = `Local\AquaLandInstance`

type instanceLock struct {
	handle windows.Handle
}

func (l *instanceLock) Release() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("close Aqua Land instance mutex: %w", err)
	}
	return nil
}

func acquireInstanceLock() (*instanceLock, bool, error) {
	return acquireNamedInstanceLock(instanceMutexName)
}

// CreateMutex hands back a valid handle together with ERROR_ALREADY_EXISTS
// when another process owns the name.
func acquireNamedInstanceLock(mutexName string) (*instanceLock, bool, error) {
	name, err := windows.UTF16PtrFromString(mutexName)
	if err != nil {
		return nil, false, fmt.Errorf("encode mutex name %q: %w", mutexName, err)
	}
	handle, err := windows.CreateMutex(nil, false, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			_ = windows.CloseHandle(handle)
		}
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("create Aqua Land instance mutex: %w", err)
	}
	return &instanceLock{handle: handle}, false, nil
}
