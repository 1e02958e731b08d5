package env

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Converter turns the text of an environment variable into a T. The variable
// name is passed for error reporting.
type Converter[T any] func(name, value string) (T, error)

// ConverterError is returned by As. Missing is set when the variable is not
// present, otherwise Err is the conversion failure.
type ConverterError struct {
	Name    string
	Missing bool
	Err     error
}

func (e *ConverterError) Error() string {
	if e.Missing {
		return e.Err.Error()
	}
	return fmt.Sprintf("converting environment variable '%s': %v", e.Name, e.Err)
}

func (e *ConverterError) Unwrap() error {
	return e.Err
}

// As reads v and converts it with conv.
func As[T any](v *Var, conv Converter[T]) (T, error) {
	var zero T
	s, err := v.TryGet()
	if err != nil {
		return zero, &ConverterError{Name: v.Name(), Missing: true, Err: err}
	}
	res, err := conv(v.Name(), s)
	if err != nil {
		return zero, &ConverterError{Name: v.Name(), Err: err}
	}
	return res, nil
}

// MustAs is As panicking on failure.
func MustAs[T any](v *Var, conv Converter[T]) T {
	res, err := As(v, conv)
	if err != nil {
		panic(fmt.Errorf("environment variable '%s' was either not present or not a valid value: %w", v.Name(), err))
	}
	return res
}

// ConvertBoolError reports a value Bool does not recognize.
type ConvertBoolError struct {
	Name            string
	UnexpectedValue string
}

func (e ConvertBoolError) Error() string {
	return fmt.Sprintf(
		"Invalid bool value for environment variable '%s': %s. "+
			"Valid values are 'on', 'true', 'yes' and '1' for true, "+
			"'off', 'false', 'no' and '0' for false",
		e.Name, e.UnexpectedValue,
	)
}

// Bool accepts on/true/yes/1 and off/false/no/0.
func Bool(name, value string) (bool, error) {
	switch value {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, ConvertBoolError{Name: name, UnexpectedValue: value}
}

func Int(_, value string) (int, error) {
	return strconv.Atoi(value)
}

func Int64(_, value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

func Uint(_, value string) (uint, error) {
	n, err := strconv.ParseUint(value, 10, 0)
	return uint(n), err
}

func Float64(_, value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func Duration(_, value string) (time.Duration, error) {
	return time.ParseDuration(value)
}

// IsMissing reports whether err came from an unset variable.
func IsMissing(err error) bool {
	var cerr *ConverterError
	if errors.As(err, &cerr) {
		return cerr.Missing
	}
	return errors.Is(err, ErrNotPresent)
}
