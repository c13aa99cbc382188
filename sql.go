package tod

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
)

var (
	_ driver.Valuer = Time{}
	_ driver.Valuer = NullTime{}
	_ sql.Scanner   = (*Time)(nil)
	_ sql.Scanner   = (*NullTime)(nil)
)

// Value hands the datum to SQL drivers as an int64.
func (t Time) Value() (driver.Value, error) {
	return Encode(t), nil
}

// Scan accepts an int64 datum. NULL is rejected; use NullTime for
// nullable columns.
func (t *Time) Scan(src any) error {
	if src == nil {
		return ErrNull
	}
	v, err := scanDatum(src)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Value hands NULL to SQL drivers for an absent value, otherwise the datum.
func (n NullTime) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return Encode(n.Time), nil
}

// Scan accepts an int64 datum or NULL.
func (n *NullTime) Scan(src any) error {
	if src == nil {
		*n = NullTime{}
		return nil
	}
	v, err := scanDatum(src)
	if err != nil {
		return err
	}
	*n = Some(v)
	return nil
}

func scanDatum(src any) (Time, error) {
	switch v := src.(type) {
	case int64:
		return DecodeMicros(v)
	case int:
		return DecodeMicros(int64(v))
	case int32:
		return DecodeMicros(int64(v))
	default:
		return Time{}, fmt.Errorf("tod: cannot scan %T into Time", src)
	}
}
