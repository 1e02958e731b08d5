// Package env gives typed, lazily read access to environment variables.
//
// A Var is declared once with a lower-case name and reads the upper-cased
// environment variable the first time it is used:
//
//	var databaseURL = env.Define("database_url")
//	var workers = env.Define("workers")
//
//	url := databaseURL.Get()                  // panics if DATABASE_URL is unset
//	n, err := env.As(workers, env.Int)        // typed access with errors
//
// The value is read at most once per Var, later changes to the process
// environment are not observed.
package env

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/on-the-ground/hodgepodge/cache"
	"go.uber.org/multierr"
)

// ErrNotPresent is returned when an environment variable is not set.
var ErrNotPresent = errors.New("environment variable not present")

// Var is a lazily read environment variable. It is safe for concurrent use.
type Var struct {
	name string

	mu    sync.Mutex
	value *cache.SingleCache[lookup]
}

type lookup struct {
	value string
	ok    bool
}

// Define declares the environment variable named strings.ToUpper(name).
func Define(name string) *Var {
	key := strings.ToUpper(name)
	return &Var{
		name: key,
		value: cache.NewSingleCache(func() lookup {
			v, ok := os.LookupEnv(key)
			return lookup{value: v, ok: ok}
		}, cache.WithID("env:"+key)),
	}
}

// Name returns the name of the environment variable that is read.
func (v *Var) Name() string {
	return v.name
}

// Lookup returns the value and whether the variable is set.
func (v *Var) Lookup() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	l := v.value.ValueMut()
	return l.value, l.ok
}

// TryGet returns the value, or an error wrapping ErrNotPresent.
func (v *Var) TryGet() (string, error) {
	s, ok := v.Lookup()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotPresent, v.name)
	}
	return s, nil
}

// Get returns the value and panics if the variable is not set.
func (v *Var) Get() string {
	s, err := v.TryGet()
	if err != nil {
		panic(err)
	}
	return s
}

// Validate reports every variable in vars that is not set.
func Validate(vars ...*Var) error {
	var err error
	for _, v := range vars {
		if _, e := v.TryGet(); e != nil {
			err = multierr.Append(err, e)
		}
	}
	return err
}
