package todstore

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName       = errors.New("empty name")
	errChecksum        = errors.New("checksum mismatch")
	errRecordSize      = errors.New("invalid record size")
	errUnsupportedFlag = errors.New("unsupported record flags")
)

// DataError reports a stored record or index entry that cannot be decoded.
type DataError struct {
	Column string
	Key    string
	Data   []byte
	Err    error
	Msg    string
}

func dataErrf(column, key string, data []byte, err error, format string, args ...any) error {
	return &DataError{column, key, append([]byte(nil), data...), err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("todstore: %s/%s: %s: %v: (%d) %x", e.Column, e.Key, e.Msg, e.Err, len(e.Data), e.Data)
	} else {
		return fmt.Sprintf("todstore: %s/%s: %s: (%d) %x", e.Column, e.Key, e.Msg, len(e.Data), e.Data)
	}
}
