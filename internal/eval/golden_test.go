package eval_test

import (
	"path/filepath"
	"testing"

	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/txtar"
	"go.uber.org/goleak"
)

func TestGolden(t *testing.T) {
	pattern := filepath.Join("..", "..", "testdata", "eval", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			src, ok := archive.Read("src.paint")
			test.True(t, ok, test.Context("%s missing src.paint", file))

			want, ok := archive.Read("want.txt")
			test.True(t, ok, test.Context("%s missing want.txt", file))

			got := run(t, src)

			test.Diff(t, got, want)
		})
	}
}
