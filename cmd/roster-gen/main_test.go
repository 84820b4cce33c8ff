package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/squads/internal/adapters/roster"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRosterGen(t *testing.T) {
	Convey("Given an output path and no upload", t, func() {
		path := filepath.Join(t.TempDir(), "roster.json")

		out, err := execute("--upload=false", "-p", "25", "-o", path)

		Convey("Then a loadable roster is written", func() {
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "generated 25 players")

			pool, err := roster.LoadFile(path)
			So(err, ShouldBeNil)
			So(pool.Len(), ShouldEqual, 25)
		})
	})

	Convey("Given an unreachable server", t, func() {
		_, err := execute("--url", "http://127.0.0.1:1", "-p", "2", "--timeout", "1s")
		So(err, ShouldNotBeNil)
	})

	Convey("Given a stray argument", t, func() {
		_, err := execute("extra")
		So(err, ShouldNotBeNil)
	})

	Convey("Given an unwritable output path", t, func() {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		So(os.WriteFile(blocker, nil, 0o600), ShouldBeNil)
		_, err := execute("--upload=false", "-p", "1", "-o", filepath.Join(blocker, "roster.json"))
		So(err, ShouldNotBeNil)
	})
}
