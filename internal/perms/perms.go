// Package perms determines the calling process's own uid/gid, used as the
// default owner attributed to every entry the filesystem request surface
// returns to the kernel.
package perms

import (
	"os/user"
	"strconv"
)

// MyUserAndGroup returns the uid and gid of the current process.
func MyUserAndGroup() (uid uint32, gid uint32, err error) {
	current, err := user.Current()
	if err != nil {
		return 0, 0, err
	}

	uid64, err := strconv.ParseUint(current.Uid, 10, 32)
	if err != nil {
		return 0, 0, err
	}

	gid64, err := strconv.ParseUint(current.Gid, 10, 32)
	if err != nil {
		return 0, 0, err
	}

	return uint32(uid64), uint32(gid64), nil
}
