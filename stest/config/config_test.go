package config

import (
	"testing"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/pflag"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("stest", pflag.ContinueOnError)
	RegisterFlags(fs)

	return fs
}

func TestRegisterFlags(t *testing.T) {
	Convey("Every tagged field becomes a flag with its POSIX letter", t, func() {
		fs := newFlagSet()

		shorthands := map[string]string{
			"hidden":     "a",
			"block":      "b",
			"char":       "c",
			"dir":        "d",
			"exists":     "e",
			"file":       "f",
			"has-setgid": "g",
			"symlink":    "h",
			"recurse":    "l",
			"newer":      "n",
			"older":      "o",
			"pipe":       "p",
			"quiet":      "q",
			"readable":   "r",
			"non-empty":  "s",
			"has-setuid": "u",
			"inverted":   "v",
			"writable":   "w",
			"executable": "x",
		}

		for name, short := range shorthands {
			flag := fs.Lookup(name)
			So(flag, ShouldNotBeNil)
			So(flag.Shorthand, ShouldEqual, short)
		}

		Convey("The control flags stay long-only", func() {
			for _, name := range []string{"include", "exclude", "debug"} {
				flag := fs.Lookup(name)
				So(flag, ShouldNotBeNil)
				So(flag.Shorthand, ShouldBeEmpty)
			}
		})

		Convey("The set markers are not flags", func() {
			So(fs.Lookup("newerset"), ShouldBeNil)
			So(fs.Lookup("olderset"), ShouldBeNil)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Combined short flags parse the POSIX way", t, func() {
		fs := newFlagSet()
		So(fs.Parse([]string{"-dlq", "some/dir"}), ShouldBeNil)

		cfg, err := Load(fs)
		So(err, ShouldBeNil)
		So(cfg.Dir, ShouldBeTrue)
		So(cfg.Recurse, ShouldBeTrue)
		So(cfg.Quiet, ShouldBeTrue)
		So(cfg.File, ShouldBeFalse)
		So(fs.Args(), ShouldResemble, []string{"some/dir"})
	})

	Convey("The newer and older tests key off flag presence", t, func() {
		Convey("A space-separated argument binds the reference", func() {
			fs := newFlagSet()
			So(fs.Parse([]string{"-n", "ref", "candidate"}), ShouldBeNil)

			cfg, err := Load(fs)
			So(err, ShouldBeNil)
			So(cfg.NewerSet, ShouldBeTrue)
			So(cfg.Newer, ShouldEqual, "ref")
			So(fs.Args(), ShouldResemble, []string{"candidate"})
		})

		Convey("An empty argument activates the test without a reference", func() {
			fs := newFlagSet()
			So(fs.Parse([]string{"--newer=", "candidate"}), ShouldBeNil)

			cfg, err := Load(fs)
			So(err, ShouldBeNil)
			So(cfg.NewerSet, ShouldBeTrue)
			So(cfg.Newer, ShouldBeEmpty)
		})

		Convey("An absent flag leaves the test inactive", func() {
			fs := newFlagSet()
			So(fs.Parse([]string{"candidate"}), ShouldBeNil)

			cfg, err := Load(fs)
			So(err, ShouldBeNil)
			So(cfg.NewerSet, ShouldBeFalse)
			So(cfg.OlderSet, ShouldBeFalse)
		})
	})

	Convey("An invalid filter expression is a load error", t, func() {
		fs := newFlagSet()
		So(fs.Parse([]string{"--include", "("}), ShouldBeNil)

		_, err := Load(fs)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "invalid include regex")
	})
}

func TestKeep(t *testing.T) {
	Convey("Include narrows first, then exclude", t, func() {
		cfg := Config{Include: `\.go$`, Exclude: `_test\.go$`}
		So(cfg.Validate(), ShouldBeNil)

		So(cfg.Keep("pkg/file.go"), ShouldBeTrue)
		So(cfg.Keep("pkg/file_test.go"), ShouldBeFalse)
		So(cfg.Keep("pkg/file.txt"), ShouldBeFalse)

		Convey("No patterns keeps everything", func() {
			none := Config{}
			So(none.Validate(), ShouldBeNil)
			So(none.Keep("anything"), ShouldBeTrue)
		})
	})
}

func TestConfigLayering(t *testing.T) {
	Convey("Later providers override the defaults", t, func() {
		k := koanf.New(".")
		So(k.Load(structs.Provider(Default(), "koanf"), nil), ShouldBeNil)
		So(k.Load(confmap.Provider(map[string]interface{}{
			"dir":     true,
			"include": `\.go$`,
		}, "."), nil), ShouldBeNil)

		var cfg Config
		So(k.Unmarshal("", &cfg), ShouldBeNil)
		So(cfg.Dir, ShouldBeTrue)
		So(cfg.Quiet, ShouldBeFalse)
		So(cfg.Include, ShouldEqual, `\.go$`)
	})
}
