// Package config declares the stest flag surface. The struct tags drive both
// pflag registration and koanf unmarshalling, the short tag carrying the POSIX
// flag letter, so the two cannot drift apart.
package config

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

type Config struct {
	Hidden     bool   `koanf:"hidden" short:"a" description:"test that the basename starts with a dot"`
	Block      bool   `koanf:"block" short:"b" description:"test for a block special file"`
	Char       bool   `koanf:"char" short:"c" description:"test for a character special file"`
	Dir        bool   `koanf:"dir" short:"d" description:"test for a directory"`
	Exists     bool   `koanf:"exists" short:"e" description:"test that the path exists"`
	File       bool   `koanf:"file" short:"f" description:"test for a regular file"`
	Setgid     bool   `koanf:"has-setgid" short:"g" description:"test for the set-group-id flag"`
	Symlink    bool   `koanf:"symlink" short:"h" description:"test for a symbolic link"`
	Recurse    bool   `koanf:"recurse" short:"l" description:"test the contents of directories and archives"`
	Newer      string `koanf:"newer" short:"n" description:"test for paths newer than file"`
	Older      string `koanf:"older" short:"o" description:"test for paths older than file"`
	Pipe       bool   `koanf:"pipe" short:"p" description:"test for a named pipe"`
	Quiet      bool   `koanf:"quiet" short:"q" description:"exit with status 0 on the first match, printing nothing"`
	Readable   bool   `koanf:"readable" short:"r" description:"test for a readable file"`
	NonEmpty   bool   `koanf:"non-empty" short:"s" description:"test for a file that is not empty"`
	Setuid     bool   `koanf:"has-setuid" short:"u" description:"test for the set-user-id flag"`
	Invert     bool   `koanf:"inverted" short:"v" description:"invert the result of all tests"`
	Writable   bool   `koanf:"writable" short:"w" description:"test for a writable file"`
	Executable bool   `koanf:"executable" short:"x" description:"test for an executable file"`
	Include    string `koanf:"include" description:"only test paths matching regular expression"`
	Exclude    string `koanf:"exclude" description:"skip paths matching regular expression"`
	Debug      bool   `koanf:"debug" description:"log evaluation progress to stderr"`

	// NewerSet and OlderSet record whether the flag occurred at all: an empty
	// argument still activates the test, leaving it with no reference to
	// satisfy.
	NewerSet bool `koanf:"-"`
	OlderSet bool `koanf:"-"`

	IncludeRegex *regexp.Regexp `koanf:"-"`
	ExcludeRegex *regexp.Regexp `koanf:"-"`
}

// Default is the all-off baseline: no tests active, no recursion, no filters.
func Default() Config {
	return Config{}
}

// RegisterFlags declares one pflag per tagged Config field on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	t := reflect.TypeOf(Config{})

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		name := field.Tag.Get("koanf")
		if name == "" || name == "-" {
			continue
		}

		short := field.Tag.Get("short")
		usage := field.Tag.Get("description")

		switch field.Type.Kind() {
		case reflect.Bool:
			fs.BoolP(name, short, false, usage)
		case reflect.String:
			fs.StringP(name, short, "", usage)
		}
	}
}

// Load unmarshals the parsed flags, layered over the defaults, into a
// validated Config.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.NewerSet = fs.Changed("newer")
	cfg.OlderSet = fs.Changed("older")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate compiles the path filter expressions. Empty patterns leave the
// corresponding filter inactive.
func (c *Config) Validate() error {
	if c.Include != "" {
		r, err := regexp.Compile(c.Include)
		if err != nil {
			return fmt.Errorf("invalid include regex: %w", err)
		}
		c.IncludeRegex = r
	}

	if c.Exclude != "" {
		r, err := regexp.Compile(c.Exclude)
		if err != nil {
			return fmt.Errorf("invalid exclude regex: %w", err)
		}
		c.ExcludeRegex = r
	}

	return nil
}

// Keep applies the path filters, include before exclude.
func (c *Config) Keep(path string) bool {
	if c.IncludeRegex != nil && !c.IncludeRegex.MatchString(path) {
		return false
	}

	if c.ExcludeRegex != nil && c.ExcludeRegex.MatchString(path) {
		return false
	}

	return true
}
