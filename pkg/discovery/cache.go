package discovery

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Cache persists scan results keyed by the search root's identity stamp.
//
// The file holds a single record: 8 bytes little-endian device id, 8 bytes
// little-endian inode number, then zero or more NUL-terminated relative
// paths until end of file. One record exists at a time; scanning a
// different root replaces it.
type Cache struct {
	Path string
}

// NewCache creates a cache backed by the file at path.
func NewCache(path string) *Cache {
	return &Cache{Path: path}
}

// Read returns the cached entries for root, or nil when no usable cache
// exists: the file is missing, the stored stamp no longer matches the live
// root, or the record decodes to zero entries. A genuinely empty result set
// cannot be told apart from "no cache"; callers rescan in both cases.
func (c *Cache) Read(root string) ([]string, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to open cache")
	}
	defer f.Close()

	r := bufio.NewReader(f)
	stored, err := decodeStamp(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode cache stamp")
	}
	live, err := StampOf(root)
	if err != nil {
		return nil, err
	}
	if stored != live {
		// Cache belongs to a different root; force a rescan.
		return nil, nil
	}

	var entries []string
	for {
		chunk, err := r.ReadBytes(0)
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to read cache")
		}
		if trimmed := bytes.TrimRight(chunk, "\x00"); len(trimmed) > 0 {
			entries = append(entries, string(trimmed))
		}
		if err == io.EOF {
			break
		}
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries, nil
}

// Write replaces the cache with a full record for root, in the given entry
// order. The record is staged in a temp file and renamed into place so a
// concurrent reader never observes a truncated record.
func (c *Cache) Write(root string, entries []string) error {
	stamp, err := StampOf(root)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.Path), filepath.Base(c.Path)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create cache file")
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	_, _ = w.Write(stamp.encode())
	for _, entry := range entries {
		_, _ = w.WriteString(entry)
		_ = w.WriteByte(0)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write cache")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to write cache")
	}

	if err := os.Rename(tmp.Name(), c.Path); err != nil {
		return errors.Wrap(err, "failed to replace cache")
	}
	return nil
}
