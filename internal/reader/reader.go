// Package reader loads the whole content of the file to search in
package reader

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

// ReadContent returns the full text of the file. Every failure is a *model.FileReadError.
func ReadContent(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", &model.FileReadError{Path: fileName, Err: err}
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", &model.FileReadError{Path: fileName, Err: model.ErrIsDirectory}
	}

	// открываем файл для чтения
	file, err := os.Open(fileName)
	if err != nil {
		return "", &model.FileReadError{Path: fileName, Err: err}
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", &model.FileReadError{Path: fileName, Err: fmt.Errorf("read: %w", err)}
	}
	if !utf8.Valid(raw) {
		return "", &model.FileReadError{Path: fileName, Err: model.ErrInvalidEncoding}
	}

	return string(raw), nil
}
