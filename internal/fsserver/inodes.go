package fsserver

import (
	"sync"

	"github.com/jacobsa/fuse/fuseops"
)

// inodeTable assigns stable inode numbers to paths for the lifetime of the
// kernel's interest in them, tracked via lookup counts per the FUSE protocol:
// an inode is only forgotten once its cumulative lookup count has been
// decremented to zero by ForgetInode.
type inodeTable struct {
	mu sync.Mutex

	byPath  map[string]fuseops.InodeID
	byInode map[fuseops.InodeID]string
	counts  map[fuseops.InodeID]uint64
	next    fuseops.InodeID
}

func newInodeTable() *inodeTable {
	return &inodeTable{
		byPath:  map[string]fuseops.InodeID{"": fuseops.RootInodeID},
		byInode: map[fuseops.InodeID]string{fuseops.RootInodeID: ""},
		counts:  map[fuseops.InodeID]uint64{fuseops.RootInodeID: 1},
		next:    fuseops.RootInodeID + 1,
	}
}

// path returns the path recorded for inode, if any.
func (t *inodeTable) path(inode fuseops.InodeID) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.byInode[inode]
	return p, ok
}

// lookup assigns (or reuses) the inode for path and bumps its lookup count
// by one, as required after every successful LookUpInode.
func (t *inodeTable) lookup(path string) fuseops.InodeID {
	t.mu.Lock()
	defer t.mu.Unlock()

	id, ok := t.byPath[path]
	if !ok {
		id = t.next
		t.next++
		t.byPath[path] = id
		t.byInode[id] = path
	}
	t.counts[id]++
	return id
}

// forget decrements inode's lookup count by n, evicting it once it reaches
// zero. The root inode is never evicted.
func (t *inodeTable) forget(inode fuseops.InodeID, n uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if inode == fuseops.RootInodeID {
		return
	}
	if t.counts[inode] <= n {
		delete(t.counts, inode)
		if p, ok := t.byInode[inode]; ok {
			delete(t.byPath, p)
			delete(t.byInode, inode)
		}
		return
	}
	t.counts[inode] -= n
}
