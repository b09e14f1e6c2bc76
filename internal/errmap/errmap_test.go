package errmap

import (
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestFromIOErrorPassesThroughKnownErrno(t *testing.T) {
	cases := []syscall.Errno{
		syscall.ENOENT,
		syscall.EACCES,
		syscall.ECONNREFUSED,
		syscall.EPIPE,
		syscall.EAGAIN,
		syscall.ETIMEDOUT,
		syscall.EINTR,
	}
	for _, errno := range cases {
		wrapped := &os.PathError{Op: "open", Path: "/x", Err: errno}
		if got := FromIOError(wrapped); got != errno {
			t.Errorf("FromIOError(%v) = %v, want %v", wrapped, got, errno)
		}
	}
}

func TestFromIOErrorFallsBackToEIO(t *testing.T) {
	err := fmt.Errorf("some opaque failure")
	if got := FromIOError(err); got != syscall.EIO {
		t.Errorf("FromIOError(%v) = %v, want EIO", err, got)
	}
}

func TestFromIOErrorUnknownErrnoIsEIO(t *testing.T) {
	wrapped := &os.PathError{Op: "open", Path: "/x", Err: syscall.ENOSPC}
	if got := FromIOError(wrapped); got != syscall.EIO {
		t.Errorf("FromIOError(%v) = %v, want EIO", wrapped, got)
	}
}
