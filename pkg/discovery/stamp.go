package discovery

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// Stamp identifies a search root by filesystem identity. A cache record is
// valid for a root if and only if the root's live stamp equals the stored
// one; unlike mtimes, a (device, inode) pair survives touching the tree and
// changes when the root is replaced wholesale.
type Stamp struct {
	Dev uint64
	Ino uint64
}

// stampSize is the encoded size: two little-endian 64-bit values.
const stampSize = 16

// StampOf returns the identity stamp of the directory at path.
func StampOf(path string) (Stamp, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Stamp{}, errors.Wrapf(err, "failed to stat %s", path)
	}
	return Stamp{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, nil
}

func (s Stamp) encode() []byte {
	buf := make([]byte, stampSize)
	binary.LittleEndian.PutUint64(buf[:8], s.Dev)
	binary.LittleEndian.PutUint64(buf[8:], s.Ino)
	return buf
}

func decodeStamp(r io.Reader) (Stamp, error) {
	buf := make([]byte, stampSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Stamp{}, err
	}
	return Stamp{
		Dev: binary.LittleEndian.Uint64(buf[:8]),
		Ino: binary.LittleEndian.Uint64(buf[8:]),
	}, nil
}
