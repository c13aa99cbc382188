package todstore

import (
	"bytes"
	"errors"

	"github.com/andreyvit/tod"
	"go.etcd.io/bbolt"
)

// Each column is a root bucket holding a values bucket and an index bucket.
var (
	valuesBucket = []byte("v")
	indexBucket  = []byte("i")
)

type boltBackend struct {
	bdb *bbolt.DB
}

func (b *boltBackend) begin(writable bool) (backendTx, error) {
	btx, err := b.bdb.Begin(writable)
	if err != nil {
		return nil, err
	}
	return boltTx{btx}, nil
}

func (b *boltBackend) close() error {
	return b.bdb.Close()
}

type boltTx struct {
	btx *bbolt.Tx
}

func (tx boltTx) column(name string, create bool) (backendColumn, error) {
	if !create {
		root := tx.btx.Bucket([]byte(name))
		if root == nil {
			return nil, nil
		}
		vals, idx := root.Bucket(valuesBucket), root.Bucket(indexBucket)
		if vals == nil || idx == nil {
			return nil, nil
		}
		return &boltColumn{name, vals, idx}, nil
	}

	root, err := tx.btx.CreateBucketIfNotExists([]byte(name))
	if err != nil {
		return nil, err
	}
	vals, err := root.CreateBucketIfNotExists(valuesBucket)
	if err != nil {
		return nil, err
	}
	idx, err := root.CreateBucketIfNotExists(indexBucket)
	if err != nil {
		return nil, err
	}
	return &boltColumn{name, vals, idx}, nil
}

func (tx boltTx) dropColumn(name string) error {
	err := tx.btx.DeleteBucket([]byte(name))
	if errors.Is(err, bbolt.ErrBucketNotFound) {
		return nil
	}
	return err
}

func (tx boltTx) commit() error {
	return tx.btx.Commit()
}

func (tx boltTx) rollback() error {
	err := tx.btx.Rollback()
	if errors.Is(err, bbolt.ErrTxClosed) {
		return nil
	}
	return err
}

type boltColumn struct {
	name string
	vals *bbolt.Bucket
	idx  *bbolt.Bucket
}

func (c *boltColumn) record(key string) []byte {
	return c.vals.Get([]byte(key))
}

func (c *boltColumn) putRecord(key string, rec []byte) error {
	return c.vals.Put([]byte(key), rec)
}

func (c *boltColumn) deleteRecord(key string) error {
	return c.vals.Delete([]byte(key))
}

func (c *boltColumn) count() int {
	return c.vals.Stats().KeyN
}

func (c *boltColumn) index(t tod.Time, key string) error {
	return c.idx.Put(indexKey(t, key), []byte{})
}

func (c *boltColumn) unindex(t tod.Time, key string) error {
	return c.idx.Delete(indexKey(t, key))
}

func (c *boltColumn) purge(key string) error {
	var stale [][]byte
	cur := c.idx.Cursor()
	for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
		if len(k) > tod.KeySize && string(k[tod.KeySize:]) == key {
			stale = append(stale, bytes.Clone(k))
		}
	}
	for _, k := range stale {
		if err := c.idx.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func (c *boltColumn) scan(lo, hi tod.Time, fn func(key string, t tod.Time) bool) error {
	upper := tod.AppendKey(nil, hi)
	cur := c.idx.Cursor()
	for k, _ := cur.Seek(tod.AppendKey(nil, lo)); k != nil; k, _ = cur.Next() {
		if len(k) <= tod.KeySize {
			return dataErrf(c.name, "", k, errRecordSize, "invalid index key")
		}
		if bytes.Compare(k[:tod.KeySize], upper) > 0 {
			break
		}
		t, err := tod.TimeFromKey(k[:tod.KeySize])
		if err != nil {
			return dataErrf(c.name, string(k[tod.KeySize:]), k, err, "invalid index key")
		}
		if !fn(string(k[tod.KeySize:]), t) {
			break
		}
	}
	return nil
}

// indexKey orders entries by time of day, then by key bytes.
func indexKey(t tod.Time, key string) []byte {
	buf := make([]byte, 0, tod.KeySize+len(key))
	buf = tod.AppendKey(buf, t)
	return append(buf, key...)
}
