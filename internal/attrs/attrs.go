// Package attrs projects cache entries into the attribute records the
// filesystem request surface hands back to the kernel: size, mode and the
// rolled-up timestamp, with an owner overlay applied per request.
package attrs

import (
	"os"
	"time"

	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/timestamp"
)

// Attr is a projected attribute record. All four kernel timestamp fields
// (atime/mtime/ctime/crtime) are derived from the single Time field: the
// cache does not distinguish between them.
type Attr struct {
	Size uint64
	Mode os.FileMode
	Time time.Time
	Uid  uint32
	Gid  uint32
}

// ForDirectory projects a directory entry's rolled-up timestamp.
func ForDirectory(ts timestamp.Timestamp) Attr {
	return Attr{Mode: os.ModeDir | 0o555, Time: ts.Time()}
}

// ForSymlink projects a symlink entry's own timestamp.
func ForSymlink(ts timestamp.Timestamp) Attr {
	return Attr{Mode: os.ModeSymlink | 0o555, Time: ts.Time()}
}

// ForItem projects an item entry, stat-ing the underlying source file for
// its size. The returned error is already a plain I/O error from the stat
// syscall; callers map it with errmap.
func ForItem(it item.Item) (Attr, error) {
	fi, err := os.Stat(it.SourcePath)
	if err != nil {
		return Attr{}, err
	}
	return Attr{
		Size: uint64(fi.Size()),
		Mode: 0o444,
		Time: it.Timestamp.Time(),
	}, nil
}

// WithOwner returns a copy of a carrying uid/gid, overlaying whatever owner
// the entry itself might otherwise imply — the cache has no notion of
// ownership, every attribute is attributed to the caller.
func (a Attr) WithOwner(uid, gid uint32) Attr {
	a.Uid = uid
	a.Gid = gid
	return a
}
