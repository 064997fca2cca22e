package main

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFlagSurface(t *testing.T) {
	Convey("Given the root command with cobra's default flags initialized", t, func() {
		rootCmd.InitDefaultHelpFlag()
		rootCmd.InitDefaultVersionFlag()

		fs := rootCmd.Flags()

		Convey("-h and -v belong to the symlink and invert tests", func() {
			h := fs.ShorthandLookup("h")
			So(h, ShouldNotBeNil)
			So(h.Name, ShouldEqual, "symlink")

			v := fs.ShorthandLookup("v")
			So(v, ShouldNotBeNil)
			So(v.Name, ShouldEqual, "inverted")
		})

		Convey("help and version stay long-only", func() {
			help := fs.Lookup("help")
			So(help, ShouldNotBeNil)
			So(help.Shorthand, ShouldBeEmpty)

			version := fs.Lookup("version")
			So(version, ShouldNotBeNil)
			So(version.Shorthand, ShouldBeEmpty)
		})

		Convey("every test letter resolves to a flag", func() {
			for _, short := range []string{
				"a", "b", "c", "d", "e", "f", "g", "h", "l", "n",
				"o", "p", "q", "r", "s", "u", "v", "w", "x",
			} {
				So(fs.ShorthandLookup(short), ShouldNotBeNil)
			}
		})
	})
}
