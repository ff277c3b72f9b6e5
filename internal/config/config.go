// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// There are no module-level path globals anywhere in this program —
// the collection paths live here and are passed down explicitly.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Storage is embedded config for the record store backend.
	Storage `yaml:"storage"`
}

// Storage selects and configures the storage backend.
//
// driver "jsonfile" keeps each collection in its own JSON file
// (the default, and the format shared with earlier versions of the
// system). driver "sqlite" keeps both collections in one SQLite file.
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"jsonfile"`

	// TeachersPath and StudentsPath are the collection files used by
	// the jsonfile driver. A path that does not exist yet behaves as
	// an empty collection.
	TeachersPath string `yaml:"teachers_path" env:"TEACHERS_PATH" env-default:"data/teachers.json"`
	StudentsPath string `yaml:"students_path" env:"STUDENTS_PATH" env-default:"data/students.json"`

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"data/school.db"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
//
// When neither CONFIG_PATH nor --config is given, the built-in defaults
// above apply, so the program runs out of the box.
func MustLoad() *Config {
	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	if configPath == "" {
		// No file given: populate from env vars and defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct.
	// It also reads any env:"..." tagged fields from the environment.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
