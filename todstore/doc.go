/*
Package todstore persists nullable time-of-day values on top of Bolt.

Values live in columns. Each column is a root bucket with two nested
buckets:

  - v maps keys to records (see below);
  - i holds one entry per non-null value, keyed by the 8-byte tod key of the
    value followed by the key, with an empty value. Bytewise order of this
    bucket is time-of-day order, which is what Between scans.

**Records** are 17 bytes: a flags byte (bit 0 means NULL), the big-endian
datum, and a big-endian xxhash64 of the first 9 bytes. Records that fail the
checksum or hold an out-of-range datum are reported as *DataError and never
turned into a best-effort value.
*/
package todstore
