package tod

import (
	"errors"
	"testing"
	"time"
)

func TestFromHMS(t *testing.T) {
	tests := []struct {
		h, m, s int
		comp    Component
		ok      bool
	}{
		{0, 0, 0, 0, true},
		{23, 59, 59, 0, true},
		{24, 0, 0, Hour, false},
		{-1, 0, 0, Hour, false},
		{23, 60, 0, Minute, false},
		{23, -1, 0, Minute, false},
		{23, 59, 60, Second, false},
		{23, 59, -1, Second, false},
	}
	for _, tt := range tests {
		v, err := FromHMS(tt.h, tt.m, tt.s)
		if tt.ok {
			if err != nil {
				t.Errorf("FromHMS(%d, %d, %d) failed: %v", tt.h, tt.m, tt.s, err)
				continue
			}
			if v.Hour() != tt.h || v.Minute() != tt.m || v.Second() != tt.s || v.Microsecond() != 0 {
				t.Errorf("FromHMS(%d, %d, %d) = %v", tt.h, tt.m, tt.s, v)
			}
			continue
		}
		var re *RangeError
		if !errors.As(err, &re) {
			t.Errorf("FromHMS(%d, %d, %d) err = %v, wanted *RangeError", tt.h, tt.m, tt.s, err)
			continue
		}
		if re.Component != tt.comp {
			t.Errorf("FromHMS(%d, %d, %d) component = %v, wanted %v", tt.h, tt.m, tt.s, re.Component, tt.comp)
		}
		if re.Decoded {
			t.Errorf("FromHMS(%d, %d, %d) error marked as decoded", tt.h, tt.m, tt.s)
		}
		if v != (Time{}) {
			t.Errorf("FromHMS(%d, %d, %d) returned non-zero value %v alongside error", tt.h, tt.m, tt.s, v)
		}
	}
}

func TestFromHMSMicro(t *testing.T) {
	v, err := FromHMSMicro(8, 30, 5, 123456)
	if err != nil {
		t.Fatal(err)
	}
	eq(t, v.Hour(), 8)
	eq(t, v.Minute(), 30)
	eq(t, v.Second(), 5)
	eq(t, v.Microsecond(), 123456)

	if _, err := FromHMSMicro(0, 0, 0, 999999); err != nil {
		t.Errorf("FromHMSMicro(0, 0, 0, 999999) failed: %v", err)
	}
	_, err = FromHMSMicro(0, 0, 0, 1_000_000)
	var re *RangeError
	if !errors.As(err, &re) || re.Component != Microsecond || re.Max != 999999 {
		t.Fatalf("FromHMSMicro(0, 0, 0, 1000000) err = %v, wanted microsecond RangeError", err)
	}
	_, err = FromHMSMicro(0, 0, 0, -1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("FromHMSMicro(0, 0, 0, -1) err = %v, wanted ErrOutOfRange", err)
	}
}

func TestFromHMSReportsFirstBadComponent(t *testing.T) {
	_, err := FromHMSMicro(99, 99, 99, -5)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, wanted *RangeError", err)
	}
	eq(t, re.Component, Hour)
	eq(t, re.Value, int64(99))
}

func TestMust(t *testing.T) {
	eq(t, MustHMS(1, 2, 3), MustHMSMicro(1, 2, 3, 0))

	defer func() {
		if recover() == nil {
			t.Fatalf("MustHMS(24, 0, 0) did not panic")
		}
	}()
	MustHMS(24, 0, 0)
}

func TestWith(t *testing.T) {
	base := MustHMSMicro(10, 20, 30, 40)

	v, err := base.WithHour(23)
	if err != nil {
		t.Fatal(err)
	}
	eq(t, v, MustHMSMicro(23, 20, 30, 40))
	eq(t, base, MustHMSMicro(10, 20, 30, 40))

	v, err = base.WithMinute(0)
	if err != nil {
		t.Fatal(err)
	}
	eq(t, v, MustHMSMicro(10, 0, 30, 40))

	v, err = base.WithSecond(59)
	if err != nil {
		t.Fatal(err)
	}
	eq(t, v, MustHMSMicro(10, 20, 59, 40))

	v, err = base.WithMicrosecond(999999)
	if err != nil {
		t.Fatal(err)
	}
	eq(t, v, MustHMSMicro(10, 20, 30, 999999))

	for name, fn := range map[string]func() (Time, error){
		"hour":        func() (Time, error) { return base.WithHour(24) },
		"minute":      func() (Time, error) { return base.WithMinute(60) },
		"second":      func() (Time, error) { return base.WithSecond(-1) },
		"microsecond": func() (Time, error) { return base.WithMicrosecond(1_000_000) },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fn()
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("err = %v, wanted *RangeError", err)
			}
			eq(t, re.Component.String(), name)
		})
	}
}

func TestFromClock(t *testing.T) {
	loc := time.FixedZone("X", 5*3600)
	v := FromClock(time.Date(2024, 2, 29, 17, 4, 9, 123456789, loc))
	eq(t, v, MustHMSMicro(17, 4, 9, 123456))
}

func TestCompare(t *testing.T) {
	a := MustHMSMicro(9, 0, 0, 1)
	b := MustHMSMicro(9, 0, 0, 2)
	eq(t, a.Compare(b), -1)
	eq(t, b.Compare(a), 1)
	eq(t, a.Compare(a), 0)
	eq(t, a.Before(b), true)
	eq(t, a.After(b), false)
	eq(t, Time{}.IsMidnight(), true)
	eq(t, a.IsMidnight(), false)
}

func TestDuration(t *testing.T) {
	eq(t, MustHMSMicro(1, 1, 1, 1).Duration(), time.Hour+time.Minute+time.Second+time.Microsecond)
	eq(t, MustHMSMicro(23, 59, 59, 999999).Duration(), 24*time.Hour-time.Microsecond)
}

func TestComponentString(t *testing.T) {
	eq(t, Hour.String(), "hour")
	eq(t, Microsecond.String(), "microsecond")
	eq(t, Component(9).String(), "Component(9)")
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Fatalf("** got %v, wanted %v", a, e)
	}
}

func TestComponentMaxValue(t *testing.T) {
	eq(t, Hour.maxValue(), int64(23))
	eq(t, Minute.maxValue(), int64(59))
	eq(t, Second.maxValue(), int64(59))
	eq(t, Microsecond.maxValue(), int64(999999))

	defer func() {
		if recover() == nil {
			t.Errorf("maxValue of an invalid component did not panic")
		}
	}()
	Component(9).maxValue()
}
