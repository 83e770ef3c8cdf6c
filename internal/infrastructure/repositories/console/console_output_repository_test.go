//go:build unit

package console_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/requpdate/internal/infrastructure/repositories/console"
)

func TestConsoleOutputRepository(t *testing.T) {
	t.Parallel()

	t.Run("should write log lines followed by a newline", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		output := console.NewConsoleOutputRepositoryWithWriter(&buf, false)

		// when
		output.Log("asdf")

		// then
		assert.Equal(t, "asdf\n", buf.String())
	})

	t.Run("should write success and failure lines without color codes when disabled", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		output := console.NewConsoleOutputRepositoryWithWriter(&buf, false)

		// when
		output.Success("done")
		output.Failure("broken")

		// then
		assert.Equal(t, "done\nbroken\n", buf.String())
	})

	t.Run("should color success lines when enabled", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		output := console.NewConsoleOutputRepositoryWithWriter(&buf, true)

		// when
		output.Success("done")

		// then
		assert.Contains(t, buf.String(), "\x1b[32m")
		assert.Contains(t, buf.String(), "done")
	})

	t.Run("should align table columns", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		output := console.NewConsoleOutputRepositoryWithWriter(&buf, false)

		// when
		output.Table([][]string{
			{"PACKAGE", "FROM", "TO"},
			{"varsnap", "1.0.0", "1.2.3"},
			{"requests", "2.0.0", "2.32.3"},
		})

		// then
		assert.Equal(t,
			"PACKAGE   FROM   TO\n"+
				"varsnap   1.0.0  1.2.3\n"+
				"requests  2.0.0  2.32.3\n",
			buf.String())
	})

	t.Run("should measure wide runes by display width", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		output := console.NewConsoleOutputRepositoryWithWriter(&buf, false)

		// when
		output.Table([][]string{
			{"日本", "x"},
			{"abcd", "y"},
		})

		// then
		assert.Equal(t, "日本  x\nabcd  y\n", buf.String())
	})

	t.Run("should print nothing for an empty table", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		output := console.NewConsoleOutputRepositoryWithWriter(&buf, false)

		// when
		output.Table(nil)

		// then
		assert.Empty(t, buf.String())
	})
}
