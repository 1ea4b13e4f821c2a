package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Request is implemented by the payload types of the six resources. Binding
// tags on the concrete types are checked by gin's validator before
// ToDomain is called.
type Request[T any] interface {
	ToDomain() T
}

// ErrInvalidInt is returned when a payload value is not an integer.
var ErrInvalidInt = errors.New("invalid integer")

// Int is an integer payload value. Like the browsable API it accepts the
// decimal string form as well ("3").
type Int int64

func (i *Int) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInt, string(b))
	}
	*i = Int(v)
	return nil
}

// clone copies an optional value so a request never aliases the row it was
// built from.
func clone[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref[V any](p *V) V {
	var zero V
	if p == nil {
		return zero
	}
	return *p
}

func toID(p *Int) *int64 {
	if p == nil {
		return nil
	}
	v := int64(*p)
	return &v
}

func fromID(p *int64) *Int {
	if p == nil {
		return nil
	}
	v := Int(*p)
	return &v
}
