
package file

import (
	"io/fs"
	"syscall"
	"time"
)

// accessTime returns last access time of file described by <info>, falling back to the current time
func accessTime(info fs.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Now()
	}
	return time.Unix(int64(stat.Atim.Sec), int64(stat.Atim.Nsec)) // int32 on 32-bit platforms
}
