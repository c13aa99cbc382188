package todstore

import "github.com/andreyvit/tod"

// backend holds the columns of a Store: Bolt on disk, or plain maps in memory.
type backend interface {
	begin(writable bool) (backendTx, error)
	close() error
}

type backendTx interface {
	// column returns nil when the column doesn't exist and create is false.
	column(name string, create bool) (backendColumn, error)
	// dropColumn removes the column with its index. A missing column is not an error.
	dropColumn(name string) error
	commit() error
	// rollback is a no-op after commit.
	rollback() error
}

// backendColumn is one column's records plus its time-of-day index, as seen
// by a single transaction.
type backendColumn interface {
	// record returns nil for a missing key. The slice must not be modified.
	record(key string) []byte
	putRecord(key string, rec []byte) error
	deleteRecord(key string) error
	count() int

	index(t tod.Time, key string) error
	unindex(t tod.Time, key string) error
	// purge drops the index entries of key whatever their time.
	purge(key string) error
	// scan visits index entries in [lo, hi] ordered by time, then key.
	scan(lo, hi tod.Time, fn func(key string, t tod.Time) bool) error
}
