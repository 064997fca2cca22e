package stest

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReadPaths(t *testing.T) {
	Convey("Paths are read line by line until a blank line", t, func() {
		So(ReadPaths(strings.NewReader("a\nb\n\nc\n")), ShouldResemble, []string{"a", "b"})
	})

	Convey("End of input also terminates", t, func() {
		So(ReadPaths(strings.NewReader("a\nb")), ShouldResemble, []string{"a", "b"})
	})

	Convey("Lines are trimmed and whitespace-only lines count as blank", t, func() {
		So(ReadPaths(strings.NewReader("  a  \n\t\nb\n")), ShouldResemble, []string{"a"})
	})

	Convey("Empty input yields no candidates", t, func() {
		So(ReadPaths(strings.NewReader("")), ShouldBeNil)
	})
}
