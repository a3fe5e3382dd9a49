package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/cmfc/core/option"
	"github.com/npillmayer/schuko/testconfig"
)

func TestOptionMaybe(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var y1, y2, y3 interface{}
	x := option.SomeString("2021-04-01")
	t.Logf("x = %v, x.T = %T, x.unwrap = %v", x, x, x.Unwrap())
	y1, _ = x.Match(option.Maybe{
		option.None: "no date",
		option.Some: x.Unwrap() + "!",
	})
	//
	x = option.String()
	y2, _ = x.Match(option.Maybe{
		option.None: "no date",
		option.Some: revised,
	})
	//
	x = option.SomeString("2021-04-02")
	y3, _ = x.Match(option.Maybe{
		option.None:  "no date",
		option.Some:  nonsense,
		option.Error: revised,
	})
	//
	t.Logf("y1 = %v, y2 = %v, y3 = %v", y1, y2, y3)
	if y1.(string) != "2021-04-01!" {
		t.Errorf("expected Some(2021-04-01) to match to 2021-04-01!, is %v", y1)
	}
	if y2.(string) != "no date" {
		t.Errorf("expected unset string to match to 'no date', is %v", y2)
	}
	if y3 != " (rev. 2021-04-02)" {
		t.Errorf("expected error to be caught by revised(), is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	x := option.SomeString("CC-BY")
	y1, err := x.Match(option.Of{
		option.None: 0,
		"CC-BY":     99,
		option.Some: 1,
	})
	if err != nil || y1.(int) != 99 {
		t.Errorf("expected Some(CC-BY) to match to 99, is %v (err=%v)", y1, err)
	}
	y2, err := option.SomeString("MIT").Match(option.Of{
		option.None: 0,
		"CC-BY":     99,
		option.Some: 1,
	})
	if err != nil || y2.(int) != 1 {
		t.Errorf("expected Some(MIT) to match to 1, is %v (err=%v)", y2, err)
	}
}

func TestOptionFail(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	x := option.SomeString("")
	_, err := x.Match(option.Of{
		option.None:  "None",
		"":           option.Fail(errors.New("Fail")),
		option.Some:  x.Unwrap(),
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	if err == nil {
		t.Fatalf("expected Some(\"\") to match to an error, hasn't")
	}
	if err.Error() != "Caught Fail" {
		t.Errorf("expected Some(\"\") error to be caught, isn't")
	}
}

func TestOptionUnset(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	x := option.String()
	if !x.IsNone() {
		t.Errorf("expected String() to be unset")
	}
	if x.UnwrapOr("fallback") != "fallback" {
		t.Errorf("expected UnwrapOr to return fallback for unset string")
	}
	if _, err := x.Match(option.Maybe{option.Some: 1}); err != option.ErrCannotMatchUnsetValue {
		t.Errorf("expected ErrCannotMatchUnsetValue, have %v", err)
	}
	if _, err := option.Match(x, 42); err != option.ErrNoSuchMatchPattern {
		t.Errorf("expected ErrNoSuchMatchPattern, have %v", err)
	}
}

// ---------------------------------------------------------------------------

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func revised(x interface{}) (interface{}, error) {
	return fmt.Sprintf(" (rev. %v)", x), nil
}
