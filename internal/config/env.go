// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotEnvFile is loaded when DOTENV is not set and the file exists.
const defaultDotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` struct tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func parseEnvWithPrefix(cfg any, prefix string) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// dotEnvPath returns the .env file to load: DOTENV if set, otherwise
// [defaultDotEnvFile].
func dotEnvPath() string {
	if p := os.Getenv("DOTENV"); p != "" {
		return p
	}
	return defaultDotEnvFile
}

// loadDotEnv loads variables from path without overriding variables that
// are already set. A missing default file is not an error; a missing file
// that was asked for explicitly is.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == defaultDotEnvFile {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
