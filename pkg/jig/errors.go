package jig

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a named parameter value reported with an error
type Value struct {
	Name  string
	Value float64
}

func val(name string, v float64) Value {
	return Value{Name: name, Value: v}
}

// DomainError reports parameters outside the domain of a geometric
// construction: an invalid trigonometric argument, a negative value under a
// square root or inconsistent radius ordering.
type DomainError struct {
	Op     string // feature being computed, e.g. "pin hole" or "outline"
	Reason string
	Values []Value
}

func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if len(e.Values) > 0 {
		b.WriteString(" (")
		for i, v := range e.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.Name)
			b.WriteByte('=')
			b.WriteString(strconv.FormatFloat(v.Value, 'g', 6, 64))
		}
		b.WriteByte(')')
	}
	return b.String()
}

func domainErr(op, reason string, values ...Value) *DomainError {
	return &DomainError{Op: op, Reason: reason, Values: values}
}

// ConfigError reports malformed configuration text: an unknown name, a
// mini-language string that does not parse or a tuple with the wrong arity.
type ConfigError struct {
	Field  string
	Input  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
