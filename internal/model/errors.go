package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingQuery    = errors.New("didn't get a query string")
	ErrMissingFilePath = errors.New("didn't get a file path")
	ErrIsDirectory     = errors.New("is a directory")
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// ArgumentError - launch arguments are incomplete
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// FileReadError - file with the content to search in can't be opened or read
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
