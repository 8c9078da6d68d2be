package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock. Binding a deterministic
// localhost port doubles as a lock that the OS releases even after a crash.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance takes the per-application lock or reports that
// another instance is running.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", lockPort(appName)))
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

func lockPort(appName string) int {
	const (
		minPort  = 20000
		portSpan = 20000
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte("focustree:" + appName))
	return minPort + int(hash.Sum32()%uint32(portSpan))
}
