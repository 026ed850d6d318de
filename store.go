package rentdb

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rentdb/rentdb/codec"
	"github.com/rentdb/rentdb/fio"
	"github.com/rentdb/rentdb/keydir"
	"github.com/rentdb/rentdb/model"
)

// Store is one fixed-slot record file. Every slot is exactly
// codec.Size() bytes: a leading active flag, the record id, then the
// entity payload. Slots never move once written; Delete is a one-byte
// tombstone and Add reuses the lowest tombstoned slot before growing the
// file. There is no on-disk header, count or free list: the slot count is
// the file length divided by the slot size, and a partial trailing slot
// is treated as end of data.
type Store[T model.Record] struct {
	mu sync.Mutex

	io     fio.IOManager
	codec  codec.Codec[T]
	keydir keydir.Keydir // nil means every lookup is a linear scan

	size        int64 // slot size in bytes
	file        string
	syncOnWrite bool
	logger      *slog.Logger
	closed      bool
}

// Slot pairs a decoded record with its tombstone state and byte offset,
// for readers that need deleted rows too.
type Slot[T model.Record] struct {
	Record T
	Active bool
	Offset int64
}

func openStore[T model.Record](file string, c codec.Codec[T], opts *options) (*Store[T], error) {
	iom, err := opts.ioManagerCreator(file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}

	s := &Store[T]{
		io:          iom,
		codec:       c,
		size:        int64(c.Size()),
		file:        file,
		syncOnWrite: opts.syncOnWrite,
		logger:      opts.logger,
	}
	if opts.keydirCreator != nil {
		s.keydir = opts.keydirCreator()
		if err := s.rebuildKeydir(); err != nil {
			_ = iom.Close()
			return nil, err
		}
	}
	return s, nil
}

// Add validates rec, marks it active and writes it into the lowest free
// slot, appending at end of file when none is tombstoned. It returns the
// byte offset the record landed on.
func (s *Store[T]) Add(rec T) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}

	if err := rec.Validate(); err != nil {
		return 0, err
	}
	if _, _, err := s.find(rec.RecordID()); err == nil {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateID, rec.RecordID())
	} else if !errors.Is(err, ErrRecordNotFound) {
		return 0, err
	}

	data, err := s.codec.Marshal(rec)
	if err != nil {
		return 0, err
	}

	offset, reused, err := s.freeSlot()
	if err != nil {
		return 0, err
	}
	if _, err := s.io.WriteAt(data, offset); err != nil {
		return 0, fmt.Errorf("write slot at %d: %w", offset, err)
	}
	if s.keydir != nil {
		s.keydir.Put(rec.RecordID(), offset)
	}
	if reused {
		s.logger.Debug("reusing free slot", "file", s.file, "id", rec.RecordID(), "offset", offset)
	} else {
		s.logger.Debug("appended new slot", "file", s.file, "id", rec.RecordID(), "offset", offset)
	}
	return offset, s.maybeSync()
}

// Get returns the active record with the given id and its byte offset.
func (s *Store[T]) Get(id int32) (T, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	if s.closed {
		return zero, 0, ErrStoreClosed
	}
	return s.find(id)
}

// Update applies mutate to the record with the given id and writes it
// back over the same slot. The record keeps its id and active flag no
// matter what mutate does; identity and activation never change here.
func (s *Store[T]) Update(id int32, mutate func(T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	rec, offset, err := s.find(id)
	if err != nil {
		return err
	}
	mutate(rec)
	rec.SetRecordID(id)
	if err := rec.Validate(); err != nil {
		return err
	}

	data, err := s.codec.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := s.io.WriteAt(data, offset); err != nil {
		return fmt.Errorf("write slot at %d: %w", offset, err)
	}
	s.logger.Debug("updated record", "file", s.file, "id", id, "offset", offset)
	return s.maybeSync()
}

// Delete tombstones the record with a single false-flag byte at its slot
// offset. The payload bytes stay on disk, stale, until the slot is
// reused; a delete is one atomic one-byte write.
func (s *Store[T]) Delete(id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	_, offset, err := s.find(id)
	if err != nil {
		return err
	}
	if _, err := s.io.WriteAt([]byte{codec.InactiveFlag}, offset); err != nil {
		return fmt.Errorf("tombstone slot at %d: %w", offset, err)
	}
	if s.keydir != nil {
		s.keydir.Delete(id)
	}
	s.logger.Debug("tombstoned record", "file", s.file, "id", id, "offset", offset)
	return s.maybeSync()
}

// All returns every active record in ascending offset order. Slots that
// fail to decode are skipped, never fatal.
func (s *Store[T]) All() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	n, err := s.slotCount()
	if err != nil {
		return nil, err
	}
	var recs []T
	for i := int64(0); i < n; i++ {
		rec, active, err := s.readSlot(i * s.size)
		if err != nil || !active {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Slots returns every decodable slot, tombstoned ones included, in
// offset order. Report readers use it to see deleted rows.
func (s *Store[T]) Slots() ([]Slot[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	n, err := s.slotCount()
	if err != nil {
		return nil, err
	}
	var slots []Slot[T]
	for i := int64(0); i < n; i++ {
		offset := i * s.size
		rec, active, err := s.readSlot(offset)
		if err != nil {
			continue
		}
		slots = append(slots, Slot[T]{Record: rec, Active: active, Offset: offset})
	}
	return slots, nil
}

// Sync flushes file contents to stable storage.
func (s *Store[T]) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	return s.io.Sync()
}

// Close syncs and releases the file handle. A second close fails with
// ErrStoreClosed instead of touching the handle again, as does every
// other operation after the first close.
func (s *Store[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.closed = true
	if err := s.io.Sync(); err != nil {
		_ = s.io.Close()
		return fmt.Errorf("sync %s: %w", s.file, err)
	}
	return s.io.Close()
}

// find locates the active record with the given id: a keydir lookup when
// the index is on, otherwise a full scan decoding every slot. Inactive
// slots are skipped as candidates but still advance the offset.
func (s *Store[T]) find(id int32) (T, int64, error) {
	var zero T
	if s.keydir != nil {
		offset, ok := s.keydir.Get(id)
		if !ok {
			return zero, 0, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
		}
		rec, active, err := s.readSlot(offset)
		if err != nil || !active || rec.RecordID() != id {
			// the keydir is updated with every write, so a mismatch
			// means the file changed underneath us
			return zero, 0, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
		}
		return rec, offset, nil
	}

	n, err := s.slotCount()
	if err != nil {
		return zero, 0, err
	}
	for i := int64(0); i < n; i++ {
		offset := i * s.size
		rec, active, err := s.readSlot(offset)
		if err != nil {
			continue
		}
		if active && rec.RecordID() == id {
			return rec, offset, nil
		}
	}
	return zero, 0, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
}

// freeSlot returns the offset of the lowest tombstoned slot, reading only
// the flag byte of each slot, or the end of file when none is free.
func (s *Store[T]) freeSlot() (offset int64, reused bool, err error) {
	n, err := s.slotCount()
	if err != nil {
		return 0, false, err
	}
	flag := make([]byte, 1)
	for i := int64(0); i < n; i++ {
		offset := i * s.size
		if _, err := s.io.ReadAt(flag, offset); err != nil {
			return 0, false, fmt.Errorf("read slot flag at %d: %w", offset, err)
		}
		if !codec.Active(flag[0]) {
			return offset, true, nil
		}
	}
	return n * s.size, false, nil
}

// readSlot decodes the whole slot at offset and reports its active flag.
func (s *Store[T]) readSlot(offset int64) (T, bool, error) {
	var zero T
	buf := make([]byte, s.size)
	if _, err := s.io.ReadAt(buf, offset); err != nil {
		return zero, false, err
	}
	rec, err := s.codec.Unmarshal(buf)
	if err != nil {
		return zero, false, err
	}
	return rec, codec.Active(buf[0]), nil
}

// slotCount is the number of whole slots on disk. A partial trailing
// slot does not count.
func (s *Store[T]) slotCount() (int64, error) {
	size, err := s.io.Size()
	if err != nil {
		return 0, err
	}
	return size / s.size, nil
}

func (s *Store[T]) rebuildKeydir() error {
	n, err := s.slotCount()
	if err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		offset := i * s.size
		rec, active, err := s.readSlot(offset)
		if err != nil {
			s.logger.Warn("skipping malformed slot", "file", s.file, "offset", offset, "err", err)
			continue
		}
		if active {
			s.keydir.Put(rec.RecordID(), offset)
		}
	}
	return nil
}

func (s *Store[T]) maybeSync() error {
	if !s.syncOnWrite {
		return nil
	}
	return s.io.Sync()
}
