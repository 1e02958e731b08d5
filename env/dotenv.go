package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// InitDotenv loads variables from the given .env files, or from ./.env when
// none are given. A missing default file is not an error. Variables already
// set in the process environment are kept.
func InitDotenv(paths ...string) error {
	err := godotenv.Load(paths...)
	if len(paths) == 0 && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
