package util

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

// Error returns only the message; the cause stays reachable through Unwrap.
func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrUnprocessable       = errors.New("your requested Item could not be processed")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

var MessageInternalServerError string = "internal server error"

// ReadLine reads one line from br without the trailing "\n" or "\r\n".
// The last line of the input is returned even when it has no newline; io.EOF is only
// returned once nothing is left.
func ReadLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func StringToFloat64(str string) (float64, error) {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return val, nil
}

// ParseLeadingInt parses the integer at the start of s (after leading whitespace) and ignores
// whatever follows it. ok is false when s does not start with an integer.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	val, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return val, true
}

// AttributeValue returns the part of a header line after its first ':'. Lines written as
// "KEY value" have no colon, so the key prefix is cut instead.
func AttributeValue(line, key string) string {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		return line[idx+1:]
	}
	return strings.TrimPrefix(line, key)
}

func StopConcurrentOperation(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
