// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Line-mode evaluation loop.
//
// Asks for height and weight, prints the outcome and starts over until
// EOF (Ctrl+D), Ctrl+C or "q". On a terminal it uses liner for history
// and line editing; piped input is read line by line.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/bmi-tui/internal/bmi"
	"github.com/jeranaias/bmi-tui/internal/config"
)

const (
	heightPrompt = "Chiều cao (cm): "
	weightPrompt = "Cân nặng (kg): "
	historyName  = "prompt_history"
)

// errQuit ends the loop without an error.
var errQuit = errors.New("quit")

// lineReader reads one line after showing a prompt.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// =============================================================================
// LINER READER
// =============================================================================

// linerReader provides input history and line editing on a terminal.
type linerReader struct {
	line        *liner.State
	historyFile string
}

func newLinerReader() *linerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	r := &linerReader{line: line}
	if dir, err := config.ConfigDir(); err == nil {
		r.historyFile = filepath.Join(dir, historyName)
		if f, err := os.Open(r.historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}
	return r
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history with owner-only permissions and restores the terminal.
func (r *linerReader) Close() error {
	if r.historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(r.historyFile), 0700); err == nil {
			if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
				_, _ = r.line.WriteHistory(f)
				f.Close()
			}
		}
	}
	return r.line.Close()
}

// =============================================================================
// SCANNER READER
// =============================================================================

// scanReader reads piped input. Prompts still go to out so transcripts
// read naturally.
type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScanReader(in io.Reader, out io.Writer) *scanReader {
	return &scanReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		fmt.Fprintln(r.out)
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := r.scanner.Text()
	fmt.Fprintln(r.out)
	return line, nil
}

func (r *scanReader) Close() error { return nil }

// =============================================================================
// COMMAND
// =============================================================================

func newPromptCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Evaluate measurements in a line-mode loop",
		Long: `Ask for height and weight, print the result and repeat.
Type q to quit, or press Ctrl+D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r lineReader
			if isTerminalReader(cmd.InOrStdin()) {
				r = newLinerReader()
			} else {
				r = newScanReader(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			defer r.Close()
			return runPromptLoop(r, cmd.OutOrStdout(), st.logger)
		},
	}
}

// runPromptLoop evaluates pairs read from r until the input ends or the
// user types q. Invalid pairs print the validation sentence and continue.
func runPromptLoop(r lineReader, w io.Writer, logger *zap.Logger) error {
	fmt.Fprintln(w, TitleStyle.Render("Trợ lý Sức khỏe BMI"))
	fmt.Fprintln(w, DimStyle.Render("Nhập q để thoát."))

	for {
		height, err := readField(r, heightPrompt)
		if err != nil {
			return endOfLoop(err)
		}
		weight, err := readField(r, weightPrompt)
		if err != nil {
			return endOfLoop(err)
		}

		fmt.Fprintln(w, RenderSeparator())
		out, err := bmi.Evaluate(height, weight)
		if err != nil {
			logger.Info("invalid measurement submitted", zap.String("command", "prompt"))
			fmt.Fprintln(w, ErrorStyle.Render(bmi.InvalidMeasurementMessage))
		} else {
			logger.Debug("bmi evaluated",
				zap.String("command", "prompt"),
				zap.Float64("bmi", out.BMI),
				zap.Stringer("status", out.Status),
			)
			printOutcome(w, out)
		}
		fmt.Fprintln(w, RenderSeparator())
	}
}

func readField(r lineReader, prompt string) (string, error) {
	line, err := r.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if q := strings.ToLower(strings.TrimSpace(line)); q == "q" || q == "quit" || q == "exit" {
		return "", errQuit
	}
	return line, nil
}

// endOfLoop turns the normal ways out of the loop into a nil error.
func endOfLoop(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, errQuit) {
		return nil
	}
	return err
}
