package todstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andreyvit/tod"
	"go.etcd.io/bbolt"
)

// Options configure a Store. The zero value is usable.
type Options struct {
	// Logger receives errors and, when Verbose is set, debug events.
	// Defaults to slog.Default().
	Logger *slog.Logger
	// Verbose logs every open and put at debug level.
	Verbose bool
	// IsTesting trades durability for speed: Bolt skips fsync and freelist
	// sync. Never set it for data you want to keep.
	IsTesting bool
	// MmapSize is Bolt's initial mmap size in bytes; 0 keeps the default.
	MmapSize int
	// Timeout bounds waiting for the Bolt file lock. Defaults to 10s.
	Timeout time.Duration
}

// Store keeps named columns of nullable time-of-day values. Each column
// maps string keys to values and maintains an index by time of day
// covering the non-null values.
type Store struct {
	be      backend
	logger  *slog.Logger
	verbose bool
}

// Open opens or creates a Bolt database file.
func Open(path string, opt Options) (*Store, error) {
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.Timeout != 0 {
		bopt.Timeout = opt.Timeout
	}
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if opt.MmapSize != 0 {
		bopt.InitialMmapSize = opt.MmapSize
	}

	bdb, err := bbolt.Open(path, 0666, &bopt)
	if err != nil {
		return nil, fmt.Errorf("todstore: %w", err)
	}
	s := newStore(&boltBackend{bdb}, opt)
	if s.verbose {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "todstore: opened", slog.String("path", path))
	}
	return s, nil
}

// OpenMemory returns a store that lives in memory until closed.
func OpenMemory(opt Options) *Store {
	return newStore(newMemBackend(), opt)
}

func newStore(be backend, opt Options) *Store {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	return &Store{
		be:      be,
		logger:  opt.Logger,
		verbose: opt.Verbose,
	}
}

// Close releases the database. Pending transactions must have finished.
func (s *Store) Close() error {
	return s.be.close()
}

// Put stores v under the key, replacing any previous value. An invalid
// NullTime is stored as NULL.
func (s *Store) Put(column, key string, v tod.NullTime) error {
	if err := checkNames(column, key); err != nil {
		return err
	}
	rec := appendRecord(make([]byte, 0, recordSize), v)
	err := s.update(func(tx backendTx) error {
		col, err := tx.column(column, true)
		if err != nil {
			return err
		}
		if err := s.unindex(col, column, key); err != nil {
			return err
		}
		if err := col.putRecord(key, rec); err != nil {
			return err
		}
		if v.Valid {
			return col.index(v.Time, key)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("todstore: put %s/%s: %w", column, key, err)
	}
	if s.verbose {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "todstore: put", slog.String("column", column), slog.String("key", key), slog.String("value", v.String()), hexAttr("rec", rec))
	}
	return nil
}

// Get returns the value stored under the key. found is false when there is
// no such key; a stored NULL is found but not Valid.
func (s *Store) Get(column, key string) (v tod.NullTime, found bool, err error) {
	if err := checkNames(column, key); err != nil {
		return tod.NullTime{}, false, err
	}
	err = s.view(func(tx backendTx) error {
		col, err := tx.column(column, false)
		if col == nil || err != nil {
			return err
		}
		data := col.record(key)
		if data == nil {
			return nil
		}
		found = true
		v, err = decodeRecord(column, key, data)
		if err != nil {
			s.logger.LogAttrs(context.Background(), slog.LevelError, "todstore: bad record", slog.String("column", column), slog.String("key", key), slog.Any("err", err))
		}
		return err
	})
	return v, found, err
}

// Delete removes the key from the column and its index. Deleting a missing
// key is not an error.
func (s *Store) Delete(column, key string) error {
	if err := checkNames(column, key); err != nil {
		return err
	}
	err := s.update(func(tx backendTx) error {
		col, err := tx.column(column, false)
		if col == nil || err != nil {
			return err
		}
		if err := s.unindex(col, column, key); err != nil {
			return err
		}
		return col.deleteRecord(key)
	})
	if err != nil {
		return fmt.Errorf("todstore: delete %s/%s: %w", column, key, err)
	}
	return nil
}

// DropColumn removes all values of the column. Dropping a missing column
// is not an error.
func (s *Store) DropColumn(column string) error {
	if column == "" {
		return ErrEmptyName
	}
	err := s.update(func(tx backendTx) error {
		return tx.dropColumn(column)
	})
	if err != nil {
		return fmt.Errorf("todstore: drop %s: %w", column, err)
	}
	return nil
}

// Count returns the number of keys in the column, NULLs included.
func (s *Store) Count(column string) (int, error) {
	if column == "" {
		return 0, ErrEmptyName
	}
	var n int
	err := s.view(func(tx backendTx) error {
		col, err := tx.column(column, false)
		if col != nil {
			n = col.count()
		}
		return err
	})
	return n, err
}

// Between calls fn for every key whose value lies in [lo, hi], in time
// order; keys with equal times come in key order. NULLs are never visited.
// Iteration stops early when fn returns false. fn runs inside a read
// transaction and must not modify the store.
func (s *Store) Between(column string, lo, hi tod.Time, fn func(key string, t tod.Time) bool) error {
	if column == "" {
		return ErrEmptyName
	}
	if hi.Before(lo) {
		return nil
	}
	return s.view(func(tx backendTx) error {
		col, err := tx.column(column, false)
		if col == nil || err != nil {
			return err
		}
		return col.scan(lo, hi, fn)
	})
}

// unindex removes the index entry of the key's current value, if any.
func (s *Store) unindex(col backendColumn, column, key string) error {
	old := col.record(key)
	if old == nil {
		return nil
	}
	prev, err := decodeRecord(column, key, old)
	if err != nil {
		s.logger.LogAttrs(context.Background(), slog.LevelWarn, "todstore: overwriting bad record", slog.String("column", column), slog.String("key", key), slog.Any("err", err))
		return col.purge(key)
	}
	if prev.Valid {
		return col.unindex(prev.Time, key)
	}
	return nil
}

func (s *Store) update(f func(tx backendTx) error) error {
	tx, err := s.be.begin(true)
	if err != nil {
		return err
	}
	defer tx.rollback()
	if err := f(tx); err != nil {
		return err
	}
	return tx.commit()
}

func (s *Store) view(f func(tx backendTx) error) error {
	tx, err := s.be.begin(false)
	if err != nil {
		return fmt.Errorf("todstore: %w", err)
	}
	defer tx.rollback()
	return f(tx)
}

func checkNames(column, key string) error {
	if column == "" || key == "" {
		return ErrEmptyName
	}
	return nil
}
