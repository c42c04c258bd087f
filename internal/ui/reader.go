package ui

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type line struct {
	text string
	err  error
}

// lineReader reads lines on its own goroutine so a blocked read never keeps
// a cancelled context from being observed.
type lineReader struct {
	lines chan line
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan line)}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lr.lines <- line{text: strings.TrimRight(sc.Text(), "\r")}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		lr.lines <- line{err: err}
	}()
	return lr
}

// ReadLine returns the next line, io.EOF once input is exhausted, or the
// context error.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func parseYesNo(s string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
