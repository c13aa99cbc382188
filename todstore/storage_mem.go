package todstore

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/andreyvit/tod"
)

var (
	errClosed   = errors.New("store closed")
	errReadOnly = errors.New("tx not writable")
	errTxDone   = errors.New("tx already committed or rolled back")
)

// memBackend allows one writer at a time. Committed columns are never
// mutated: a writer clones a column the first time it touches it, and
// commit swaps the column map.
type memBackend struct {
	mu      sync.Mutex
	cond    *sync.Cond
	columns map[string]*memColumn
	writer  bool
	closed  bool
}

func newMemBackend() *memBackend {
	m := &memBackend{columns: make(map[string]*memColumn)}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *memBackend) begin(writable bool) (backendTx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for writable && m.writer && !m.closed {
		m.cond.Wait()
	}
	if m.closed {
		return nil, errClosed
	}
	if writable {
		m.writer = true
	}
	return &memTx{
		m:        m,
		writable: writable,
		columns:  maps.Clone(m.columns),
		owned:    make(map[string]bool),
	}, nil
}

func (m *memBackend) close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.columns = nil
	m.cond.Broadcast()
	return nil
}

type memTx struct {
	m        *memBackend
	writable bool
	done     bool
	columns  map[string]*memColumn
	owned    map[string]bool // cloned by this tx
}

func (tx *memTx) column(name string, create bool) (backendColumn, error) {
	if tx.done {
		return nil, errTxDone
	}
	c := tx.columns[name]
	switch {
	case c == nil && !create:
		return nil, nil
	case c == nil:
		if !tx.writable {
			return nil, errReadOnly
		}
		c = &memColumn{records: make(map[string][]byte)}
		tx.columns[name] = c
		tx.owned[name] = true
	case tx.writable && !tx.owned[name]:
		c = c.clone()
		tx.columns[name] = c
		tx.owned[name] = true
	}
	return &memHandle{tx: tx, c: c}, nil
}

func (tx *memTx) dropColumn(name string) error {
	if tx.done {
		return errTxDone
	}
	if !tx.writable {
		return errReadOnly
	}
	delete(tx.columns, name)
	delete(tx.owned, name)
	return nil
}

func (tx *memTx) commit() error {
	if tx.done {
		return errTxDone
	}
	if !tx.writable {
		return errReadOnly
	}
	tx.m.mu.Lock()
	defer tx.m.mu.Unlock()
	tx.finishLocked()
	if tx.m.closed {
		return errClosed
	}
	tx.m.columns = tx.columns
	return nil
}

func (tx *memTx) rollback() error {
	tx.m.mu.Lock()
	defer tx.m.mu.Unlock()
	tx.finishLocked()
	return nil
}

func (tx *memTx) finishLocked() {
	if tx.done {
		return
	}
	tx.done = true
	if tx.writable {
		tx.m.writer = false
		tx.m.cond.Broadcast()
	}
}

type memColumn struct {
	records map[string][]byte
	entries []memEntry // sorted by compareEntries
}

type memEntry struct {
	t   tod.Time
	key string
}

func compareEntries(a, b memEntry) int {
	if c := a.t.Compare(b.t); c != 0 {
		return c
	}
	return strings.Compare(a.key, b.key)
}

func (c *memColumn) clone() *memColumn {
	return &memColumn{
		records: maps.Clone(c.records),
		entries: slices.Clone(c.entries),
	}
}

type memHandle struct {
	tx *memTx
	c  *memColumn
}

func (h *memHandle) record(key string) []byte {
	return h.c.records[key]
}

func (h *memHandle) putRecord(key string, rec []byte) error {
	if !h.tx.writable {
		return errReadOnly
	}
	h.c.records[key] = slices.Clone(rec)
	return nil
}

func (h *memHandle) deleteRecord(key string) error {
	if !h.tx.writable {
		return errReadOnly
	}
	delete(h.c.records, key)
	return nil
}

func (h *memHandle) count() int {
	return len(h.c.records)
}

func (h *memHandle) index(t tod.Time, key string) error {
	if !h.tx.writable {
		return errReadOnly
	}
	e := memEntry{t, key}
	i, found := slices.BinarySearchFunc(h.c.entries, e, compareEntries)
	if !found {
		h.c.entries = slices.Insert(h.c.entries, i, e)
	}
	return nil
}

func (h *memHandle) unindex(t tod.Time, key string) error {
	if !h.tx.writable {
		return errReadOnly
	}
	i, found := slices.BinarySearchFunc(h.c.entries, memEntry{t, key}, compareEntries)
	if found {
		h.c.entries = slices.Delete(h.c.entries, i, i+1)
	}
	return nil
}

func (h *memHandle) purge(key string) error {
	if !h.tx.writable {
		return errReadOnly
	}
	h.c.entries = slices.DeleteFunc(h.c.entries, func(e memEntry) bool {
		return e.key == key
	})
	return nil
}

func (h *memHandle) scan(lo, hi tod.Time, fn func(key string, t tod.Time) bool) error {
	i, _ := slices.BinarySearchFunc(h.c.entries, memEntry{t: lo}, compareEntries)
	for _, e := range h.c.entries[i:] {
		if e.t.After(hi) {
			break
		}
		if !fn(e.key, e.t) {
			break
		}
	}
	return nil
}
