package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/shilop/internal/logio"
	"github.com/jcorbin/shilop/internal/macro"
)

func testLogger(t *testing.T) *logio.Logger {
	var log logio.Logger
	log.SetOutput(&logio.Writer{Logf: t.Logf})
	return &log
}

func Test_batch(t *testing.T) {
	log := testLogger(t)
	var out bytes.Buffer
	err := batch(context.Background(), New(), strings.NewReader(
		"1 2 +\n"+
			"3 4 i +\n"+
			"bogus\n"+
			"\n"+
			"5 0 %\n",
	), &out, log)
	require.NoError(t, err)
	assert.Equal(t, "3\n3+4i\n\n\n5 0\n", out.String())
	assert.Equal(t, 0, log.ExitCode())
}

func Test_batch_error(t *testing.T) {
	var logOut bytes.Buffer
	var log logio.Logger
	log.SetOutput(&logOut)

	var out bytes.Buffer
	ev := New(WithMacros(panicMacros("boom")))
	err := batch(context.Background(), ev, strings.NewReader("1 2 +\nboom\n2 3 *\n"), &out, &log)
	require.NoError(t, err)
	assert.Equal(t, "3\n\n6\n", out.String())
	assert.Equal(t, "ERROR: line 2: evaluate paniced: boom\n", logOut.String())
	assert.Equal(t, 1, log.ExitCode())
}

func Test_batch_timeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := batch(ctx, New(), pr, &out, testLogger(t))
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline exceeded, got %v", err)
	assert.Equal(t, "", out.String())
}

func Test_evalOnce(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evalOnce(New(), "1 2 3 4 i +", &out))
	assert.Equal(t, "1\n2\n3+4i\n", out.String())
}

func Test_loadMacros(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("missing", func(t *testing.T) {
		table, err := loadMacros(filepath.Join(dir, "nope"), testLogger(t))
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("redefined", func(t *testing.T) {
		path := writeFile("redefined", "sq 2 pow\ncube 3 pow\nsq 2 **\n")
		var logOut bytes.Buffer
		var log logio.Logger
		log.SetOutput(&logOut)

		table, err := loadMacros(path, &log)
		require.NoError(t, err)
		assert.Equal(t, []string{"cube", "sq"}, table.Names())
		body, _ := table.Expand("sq")
		assert.Equal(t, []string{"2", "**"}, body)
		assert.Equal(t, "WARN: "+path+`:3: macro "sq" redefined, replacing the definition at `+path+":1\n", logOut.String())
		assert.Equal(t, 0, log.ExitCode())
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeFile("invalid", "a b\nb a\nc zzz\n")
		_, err := loadMacros(path, testLogger(t))
		require.Error(t, err)
		assert.EqualError(t, err, path+`: invalid macros: cycle a -> b -> a; "c" uses undefined word "zzz"`)
		var invalid *macro.InvalidError
		assert.True(t, errors.As(err, &invalid), "expected an *InvalidError")
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile("malformed", "sq 2 pow\nbroken\n")
		_, err := loadMacros(path, testLogger(t))
		var fe *macro.FormatError
		require.True(t, errors.As(err, &fe), "expected a *FormatError, got %v", err)
		assert.Equal(t, 2, fe.Line.Line)
	})
}
