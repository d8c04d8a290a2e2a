/*
Copyright 2026 The Crossdata Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package engineconfig loads the configuration of the validation and
// planning core: the default keyspace and everything used to complete Lucene
// index definitions.
//
// Values come, in decreasing precedence, from command line flags, from
// CROSSDATA_ prefixed environment variables, from an optional YAML or JSON
// config file and from built-in defaults.
package engineconfig

import (
	"maps"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/lucene"
	"github.com/vikasyadav15/crossdata/go/vt/statement"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// Config keys.
const (
	KeyKeyspace              = "keyspace"
	KeyLuceneIndexClass      = "lucene.index-class"
	KeyLuceneDefaultAnalyzer = "lucene.default-analyzer"
	KeyLuceneOptions         = "lucene.options"
	KeyLuceneTypes           = "lucene.types"

	// keyLuceneOptionOverrides holds the raw --lucene-options value.
	keyLuceneOptionOverrides = "lucene.option-overrides"
)

const envPrefix = "CROSSDATA"

// flag name -> config key
var flagKeys = map[string]string{
	"keyspace":                KeyKeyspace,
	"lucene-index-class":      KeyLuceneIndexClass,
	"lucene-default-analyzer": KeyLuceneDefaultAnalyzer,
	"lucene-options":          keyLuceneOptionOverrides,
}

// Config is the loaded configuration.
type Config struct {
	// DefaultKeyspace applies to names written without a keyspace.
	DefaultKeyspace string
	// Lucene completes Lucene index definitions. Never nil.
	Lucene *lucene.Config
	// File is the config file that was read, if any.
	File string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Lucene: lucene.DefaultConfig()}
}

// Env returns the validation environment described by the config.
func (c *Config) Env() statement.Env {
	return statement.Env{DefaultKeyspace: c.DefaultKeyspace, Lucene: c.Lucene}
}

// RegisterFlags installs the config flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML or JSON config file")
	fs.String("keyspace", "", "default keyspace for names written without one")
	fs.String("lucene-index-class", lucene.DefaultIndexClass, "class implementing Lucene indexes on the backend")
	fs.String("lucene-default-analyzer", lucene.DefaultAnalyzer, "default analyzer of generated Lucene schemas")
	fs.String("lucene-options", "", "space separated key=value overrides of the Lucene base options, e.g. \"refresh_seconds=5 ram_buffer_mb=64\"")
}

// Load reads the configuration. fs must have been set up by RegisterFlags
// and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyKeyspace, "")
	v.SetDefault(KeyLuceneIndexClass, lucene.DefaultIndexClass)
	v.SetDefault(KeyLuceneDefaultAnalyzer, lucene.DefaultAnalyzer)
	v.SetDefault(keyLuceneOptionOverrides, "")

	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			return nil, vterrors.Errorf(codes.InvalidArgument, "flag --%s not defined, did you call RegisterFlags?", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, vterrors.Wrapf(err, "cannot bind flag --%s", name)
		}
	}

	cfg := Default()
	if flag := fs.Lookup("config"); flag != nil && flag.Value.String() != "" {
		cfg.File = flag.Value.String()
		v.SetConfigFile(cfg.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, vterrors.Errorf(codes.InvalidArgument, "cannot read config file %s: %v", cfg.File, err)
		}
		log.Infof("Loaded config file %s", cfg.File)
	}

	cfg.DefaultKeyspace = v.GetString(KeyKeyspace)
	cfg.Lucene.IndexClass = v.GetString(KeyLuceneIndexClass)
	cfg.Lucene.DefaultAnalyzer = v.GetString(KeyLuceneDefaultAnalyzer)

	for cqlType, fragment := range v.GetStringMapString(KeyLuceneTypes) {
		cfg.Lucene.Registry = cfg.Lucene.Registry.With(cqlType, fragment)
	}

	overrides := v.GetStringMapString(KeyLuceneOptions)
	flagOverrides, err := ParseOptionOverrides(v.GetString(keyLuceneOptionOverrides))
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = make(map[string]string, len(flagOverrides))
	}
	maps.Copy(overrides, flagOverrides)
	if _, ok := overrides[lucene.SchemaOption]; ok {
		return nil, vterrors.Errorf(codes.InvalidArgument, "lucene option %s is generated from the indexed columns and cannot be overridden", lucene.SchemaOption)
	}
	cfg.Lucene.BaseOptions = applyOverrides(cfg.Lucene.BaseOptions, overrides)

	if cfg.Lucene.IndexClass == "" {
		return nil, vterrors.New(codes.InvalidArgument, "lucene index class cannot be empty")
	}
	return cfg, nil
}

// ParseOptionOverrides parses a shell-quoted list of key=value pairs.
func ParseOptionOverrides(s string) (map[string]string, error) {
	tokens, err := shlex.Split(s)
	if err != nil {
		return nil, vterrors.Errorf(codes.InvalidArgument, "invalid lucene options %q: %v", s, err)
	}
	overrides := make(map[string]string, len(tokens))
	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, vterrors.Errorf(codes.InvalidArgument, "invalid lucene option %q: expected key=value", token)
		}
		overrides[strings.ToLower(key)] = value
	}
	return overrides, nil
}

// applyOverrides replaces the values of existing options in place and
// appends new ones sorted by key.
func applyOverrides(base []lucene.Option, overrides map[string]string) []lucene.Option {
	options := slices.Clone(base)
	remaining := maps.Clone(overrides)
	for i, opt := range options {
		key := strings.Trim(opt.Key, "'")
		if value, ok := remaining[key]; ok {
			options[i].Value = quote(value)
			delete(remaining, key)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(remaining)) {
		options = append(options, lucene.Option{Key: quote(key), Value: quote(remaining[key])})
	}
	return options
}

// quote renders s as a CQL string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
