package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("missing argument")
	// ErrNotANumber is returned when an argument is not a positive whole number.
	ErrNotANumber = errors.New("not a number")
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the raw text after the command.
	RawArgs string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	spaceIdx := strings.IndexAny(line, " \t")
	if spaceIdx < 0 {
		return ParseResult{
			Command: strings.ToLower(line),
		}
	}

	cmd := strings.ToLower(line[:spaceIdx])
	rest := strings.TrimSpace(line[spaceIdx+1:])

	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}

	return ParseResult{
		Command: cmd,
		Args:    args,
		RawArgs: rest,
	}
}

// Arg returns the argument at pos, or ErrMissingArgument.
func (p ParseResult) Arg(pos int) (string, error) {
	if pos < 0 || pos >= len(p.Args) {
		return "", fmt.Errorf("%s: %w", p.Command, ErrMissingArgument)
	}
	return p.Args[pos], nil
}

// Index reads the argument at pos as a 1-based list number, the form players
// see, and returns the matching 0-based index.
//
// Postcondition: Returns ErrMissingArgument or ErrNotANumber for bad input;
// the returned index is always >= 0 on success.
func (p ParseResult) Index(pos int) (int, error) {
	s, err := p.Arg(pos)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s: %w: %q", p.Command, ErrNotANumber, s)
	}
	return n - 1, nil
}
