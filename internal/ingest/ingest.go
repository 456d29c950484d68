package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
)

// ErrNotText is returned for input that is not plain UTF-8 text.
var ErrNotText = errors.New("input must be plain text")

// MaxInputBytes bounds how much ciphertext is read from any source.
const MaxInputBytes = 16 << 20

// Read returns the text at path. "" and "-" read stdin; files ending in
// .zst are zstd-decompressed first.
func Read(path string) (string, error) {
	if path == "" || path == "-" {
		return ReadFrom(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if IsCompressed(path) {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("create zstd decoder: %w", err)
		}
		defer decoder.Close()

		text, err := ReadFrom(decoder)
		if err != nil {
			return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return text, nil
	}

	text, err := ReadFrom(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return text, nil
}

// ReadFrom reads all of r and checks that it is text.
func ReadFrom(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(data) > MaxInputBytes {
		return "", fmt.Errorf("input exceeds %d bytes", MaxInputBytes)
	}
	if !IsText(data) {
		return "", ErrNotText
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	return string(data), nil
}

// IsText reports whether data is valid UTF-8 without NUL bytes.
func IsText(data []byte) bool {
	return utf8.Valid(data) && bytes.IndexByte(data, 0) < 0
}

// IsCompressed reports whether path names a zstd-compressed input.
func IsCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}
