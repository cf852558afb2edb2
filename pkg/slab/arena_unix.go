//go:build unix || darwin || linux || freebsd || openbsd || netbsd

package slab

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapBitmap persists the arena's occupancy bitmap to an mmap'd file, one
// byte per slot, adapted from the teacher's OpenMmapFile/Sync/Close trio
// in pkg/pager/mmap_unix.go.
type mmapBitmap struct {
	file *os.File
	data []byte
}

func openBitmapStore(path string, capacity int) (bitmapStore, error) {
	size := int64(capacity + 1)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.Size() < size {
		if err := f.Truncate(size); err != nil {
			f.Close()
			return nil, err
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &mmapBitmap{file: f, data: data}, nil
}

func (m *mmapBitmap) set(i int, v bool) {
	if i < 0 || i >= len(m.data) {
		return
	}
	if v {
		m.data[i] = 1
	} else {
		m.data[i] = 0
	}
}

func (m *mmapBitmap) clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

func (m *mmapBitmap) close() error {
	// Flush dirty pages before unmapping, same ordering the teacher's
	// MmapFile.Grow uses to avoid losing writes still in the page cache.
	if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
		return err
	}
	if err := unix.Munmap(m.data); err != nil {
		return err
	}
	return m.file.Close()
}
