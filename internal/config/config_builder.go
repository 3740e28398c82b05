package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from several sources and merges
// them in the order they were added: a field already set by an earlier
// source is never overwritten by a later one.
type configBuilder[T any] struct {
	configs []*T
	err     error
}

func newConfigBuilder[T any]() *configBuilder[T] {
	return &configBuilder[T]{
		configs: make([]*T, 0, 4),
	}
}

func (b *configBuilder[T]) build() (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder[T]) with(cfg *T) *configBuilder[T] {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder[T]) fail(err error) *configBuilder[T] {
	b.err = errors.Join(b.err, err)
	return b
}

func (b *configBuilder[T]) withDotEnv(path string) *configBuilder[T] {
	if err := loadDotEnv(path); err != nil {
		return b.fail(err)
	}
	return b
}

func (b *configBuilder[T]) withEnv() *configBuilder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg); err != nil {
		return b.fail(err)
	}

	return b.with(envCfg)
}

// withSource adds the config produced by parse, e.g. parsed command-line flags.
func (b *configBuilder[T]) withSource(parse func() (*T, error)) *configBuilder[T] {
	cfg, err := parse()
	if err != nil {
		return b.fail(err)
	}

	return b.with(cfg)
}

// withJSON reads the JSON file named by the first source that sets a path.
func (b *configBuilder[T]) withJSON(path func(*T) string, parse func(string) (*T, error)) *configBuilder[T] {
	var jsonPath string
	for _, cfg := range b.configs {
		if p := path(cfg); p != "" {
			jsonPath = p
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parse(jsonPath)
	if err != nil {
		return b.fail(err)
	}

	return b.with(jsonCfg)
}

func (b *configBuilder[T]) withDefaults(defaults *T) *configBuilder[T] {
	return b.with(defaults)
}
