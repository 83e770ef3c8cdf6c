package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

const columnGap = 2

// ConsoleOutputRepository writes user-facing lines to a writer, optionally colored.
type ConsoleOutputRepository struct {
	writer  io.Writer
	success *color.Color
	failure *color.Color
	header  *color.Color
}

// NewConsoleOutputRepository writes to stdout, colored when stdout is a terminal.
func NewConsoleOutputRepository() repositories.OutputRepository {
	return NewConsoleOutputRepositoryWithWriter(os.Stdout, !color.NoColor)
}

// NewConsoleOutputRepositoryWithWriter writes to w. Colors are applied only
// when colored is true, independently of the global color setting.
func NewConsoleOutputRepositoryWithWriter(w io.Writer, colored bool) *ConsoleOutputRepository {
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)
	header := color.New(color.FgWhite, color.Bold)
	if colored {
		success.EnableColor()
		failure.EnableColor()
		header.EnableColor()
	} else {
		success.DisableColor()
		failure.DisableColor()
		header.DisableColor()
	}

	return &ConsoleOutputRepository{
		writer:  w,
		success: success,
		failure: failure,
		header:  header,
	}
}

func (c *ConsoleOutputRepository) Log(message string) {
	_, _ = fmt.Fprintln(c.writer, message)
}

func (c *ConsoleOutputRepository) Success(message string) {
	_, _ = c.success.Fprintln(c.writer, message)
}

func (c *ConsoleOutputRepository) Failure(message string) {
	_, _ = c.failure.Fprintln(c.writer, message)
}

// Table pads every column to its widest cell, measured in terminal cells
// so that wide runes in package names keep the columns aligned.
func (c *ConsoleOutputRepository) Table(rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, 0)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			if j == len(row)-1 {
				cells[j] = cell
				continue
			}
			cells[j] = runewidth.FillRight(cell, widths[j]+columnGap)
		}
		line := strings.Join(cells, "")
		if i == 0 {
			_, _ = c.header.Fprintln(c.writer, line)
			continue
		}
		_, _ = fmt.Fprintln(c.writer, line)
	}
}
