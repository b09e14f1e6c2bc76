package fsserver

import (
	"context"
	"math"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/jacobsa/fuse"
	"github.com/jacobsa/fuse/fuseops"
	"github.com/jacobsa/fuse/fuseutil"
)

// never is the attribute/entry expiration used throughout: the cache
// already re-validates itself against the source's own modification time on
// every request via Handler.notify, so there is nothing for the kernel to
// gain by re-querying on a shorter cadence. The offset is math.MaxInt32
// seconds, the maximum TTL representable by the original implementation, so
// this tracks that intent as closely as jacobsa/fuse's time.Time-based
// expiration allows.
var never = time.Now().Add(time.Duration(math.MaxInt32) * time.Second)

// FS adapts a Handler to github.com/jacobsa/fuse's inode-oriented
// fuseutil.FileSystem interface, translating between inode numbers and the
// paths Handler actually understands.
type FS struct {
	fuseutil.NotImplementedFileSystem

	handler *Handler
	inodes  *inodeTable
	uid     uint32
	gid     uint32

	filesMu sync.Mutex
	files   map[fuseops.HandleID]*os.File
	nextFh  fuseops.HandleID
}

// NewFS returns a FileSystem ready to be passed to fuseutil.NewFileSystemServer.
// uid and gid are attributed to every entry returned to the kernel.
func NewFS(handler *Handler, uid, gid uint32) *FS {
	return &FS{
		handler: handler,
		inodes:  newInodeTable(),
		uid:     uid,
		gid:     gid,
		files:   make(map[fuseops.HandleID]*os.File),
		nextFh:  1,
	}
}

func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func (fs *FS) attributes(p string) (fuseops.InodeAttributes, error) {
	a, err := fs.handler.GetAttr(p, fs.uid, fs.gid)
	if err != nil {
		return fuseops.InodeAttributes{}, err
	}
	return fuseops.InodeAttributes{
		Size:   a.Size,
		Nlink:  1,
		Mode:   a.Mode,
		Atime:  a.Time,
		Mtime:  a.Time,
		Ctime:  a.Time,
		Crtime: a.Time,
		Uid:    a.Uid,
		Gid:    a.Gid,
	}, nil
}

func (fs *FS) LookUpInode(ctx context.Context, op *fuseops.LookUpInodeOp) error {
	parent, ok := fs.inodes.path(op.Parent)
	if !ok {
		return syscall.ENOENT
	}

	p := childPath(parent, op.Name)
	attr, err := fs.attributes(p)
	if err != nil {
		return err
	}

	op.Entry.Child = fs.inodes.lookup(p)
	op.Entry.Attributes = attr
	op.Entry.AttributesExpiration = never
	op.Entry.EntryExpiration = never
	return nil
}

func (fs *FS) GetInodeAttributes(ctx context.Context, op *fuseops.GetInodeAttributesOp) error {
	p, ok := fs.inodes.path(op.Inode)
	if !ok {
		return syscall.ENOENT
	}

	attr, err := fs.attributes(p)
	if err != nil {
		return err
	}
	op.Attributes = attr
	op.AttributesExpiration = never
	return nil
}

func (fs *FS) ForgetInode(ctx context.Context, op *fuseops.ForgetInodeOp) error {
	fs.inodes.forget(op.Inode, op.N)
	return nil
}

func (fs *FS) OpenDir(ctx context.Context, op *fuseops.OpenDirOp) error {
	p, ok := fs.inodes.path(op.Inode)
	if !ok {
		return syscall.ENOENT
	}
	return fs.handler.OpenDir(p)
}

func (fs *FS) ReadDir(ctx context.Context, op *fuseops.ReadDirOp) error {
	p, ok := fs.inodes.path(op.Inode)
	if !ok {
		return syscall.ENOENT
	}

	children, err := fs.handler.ReadDir(p)
	if err != nil {
		return err
	}

	entries := make([]fuseutil.Dirent, 0, len(children))
	for i, c := range children {
		cp := childPath(p, c.Name)
		entries = append(entries, fuseutil.Dirent{
			Offset: fuseops.DirOffset(i + 1),
			Inode:  fs.inodes.lookup(cp),
			Name:   c.Name,
			Type:   direntType(c.Kind),
		})
	}

	if op.Offset > fuseops.DirOffset(len(entries)) {
		return nil
	}

	for _, e := range entries[op.Offset:] {
		n := fuseutil.WriteDirent(op.Dst[op.BytesRead:], e)
		if n == 0 {
			break
		}
		op.BytesRead += n
	}
	return nil
}

func direntType(k Kind) fuseutil.DirentType {
	switch k {
	case KindDirectory:
		return fuseutil.DT_Directory
	case KindSymlink:
		return fuseutil.DT_Link
	default:
		return fuseutil.DT_File
	}
}

func (fs *FS) OpenFile(ctx context.Context, op *fuseops.OpenFileOp) error {
	p, ok := fs.inodes.path(op.Inode)
	if !ok {
		return syscall.ENOENT
	}

	f, err := fs.handler.Open(p)
	if err != nil {
		return err
	}

	fs.filesMu.Lock()
	defer fs.filesMu.Unlock()
	handle := fs.nextFh
	fs.nextFh++
	fs.files[handle] = f
	op.Handle = handle
	return nil
}

func (fs *FS) ReadFile(ctx context.Context, op *fuseops.ReadFileOp) error {
	fs.filesMu.Lock()
	f, ok := fs.files[op.Handle]
	fs.filesMu.Unlock()
	if !ok {
		return syscall.EINVAL
	}

	data, err := fs.handler.Read(f, op.Offset, len(op.Dst))
	if err != nil {
		return err
	}
	op.BytesRead = copy(op.Dst, data)
	return nil
}

func (fs *FS) ReleaseFileHandle(ctx context.Context, op *fuseops.ReleaseFileHandleOp) error {
	fs.filesMu.Lock()
	f, ok := fs.files[op.Handle]
	delete(fs.files, op.Handle)
	fs.filesMu.Unlock()
	if !ok {
		return nil
	}
	return fs.handler.Release(f)
}

func (fs *FS) ReadSymlink(ctx context.Context, op *fuseops.ReadSymlinkOp) error {
	p, ok := fs.inodes.path(op.Inode)
	if !ok {
		return syscall.ENOENT
	}

	target, err := fs.handler.ReadLink(p)
	if err != nil {
		return err
	}
	op.Target = target
	return nil
}

// Mount mounts an FS at mountpoint, read-only, with parallel directory
// operations disabled: the handler and the cache it wraps already serialise
// concurrent access via a single exclusive lock per request, so nothing is
// gained by letting the kernel dispatch lookups and readdirs concurrently,
// and disabling it keeps the notify-then-lookup sequence per request
// straightforward to reason about. options are parsed "-o"-style mount
// options (e.g. "allow_other").
func Mount(mountpoint string, fs *FS, options map[string]string) (*fuse.MountedFileSystem, error) {
	server := fuseutil.NewFileSystemServer(fs)
	return fuse.Mount(mountpoint, server, &fuse.MountConfig{
		FSName:               "medifs",
		Subtype:              "medifs",
		VolumeName:           "medifs",
		ReadOnly:             true,
		Options:              options,
		EnableParallelDirOps: false,
	})
}
