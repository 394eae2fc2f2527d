package lib

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// CleanName strips a single trailing newline from line. Other whitespace,
// including a carriage return, is kept.
func CleanName(line string) string {
	return strings.TrimSuffix(line, "\n")
}

// FormatLiteral formats name as an indented, quoted, comma-terminated literal.
// Quotes inside name are not escaped.
func FormatLiteral(name string) string {
	return "    '" + name + "',"
}

// ReadNames reads every line of input and returns the cleaned names in order.
// A last line without a newline still counts; empty input yields no names.
func ReadNames(input io.Reader) ([]string, error) {
	reader := bufio.NewReader(input)
	names := []string{}
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			names = append(names, CleanName(line))
		}
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read names")
		}
	}
}

// WriteLiterals writes one literal per name, each followed by a newline
func WriteLiterals(output io.Writer, names []string) error {
	writer := bufio.NewWriter(output)
	for _, name := range names {
		if _, err := writer.WriteString(FormatLiteral(name) + "\n"); err != nil {
			return errors.Wrap(err, "write literal")
		}
	}
	return errors.Wrap(writer.Flush(), "flush literals")
}

// Convert reads names from input and writes their literals to output.
// It returns the number of names converted.
func Convert(input io.Reader, output io.Writer) (int, error) {
	names, err := ReadNames(input)
	if err != nil {
		return 0, err
	}
	return len(names), WriteLiterals(output, names)
}
