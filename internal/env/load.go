package env

import (
	"github.com/joho/godotenv"
)

// Load reads variables from the given .env files into the process
// environment. With no arguments it reads ./.env. Existing variables are never
// overridden. A missing file is returned as an error for the caller to log.
func Load(filenames ...string) error {
	return godotenv.Load(filenames...)
}
