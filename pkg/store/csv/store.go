// Package csv reads sales files into raw records, handling the two-attempt
// decoding policy (UTF-8 first, Windows-1252 fallback) and header schema
// detection.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/de-tools/sales-atlas/pkg/models/store"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read loads the whole sales file at path into memory and returns its data
// rows plus the detected schema. The wrapped error satisfies
// errors.Is(err, fs.ErrNotExist) when the file is missing.
func Read(ctx context.Context, path string) ([]store.RawRecord, store.Schema, error) {
	logger := zerolog.Ctx(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, store.Schema{}, fmt.Errorf("failed to read sales file: %w", err)
	}

	text, encoding, err := decode(raw, path)
	if err != nil {
		return nil, store.Schema{}, err
	}
	logger.Debug().Str("file", path).Str("encoding", encoding).Msg("sales file decoded")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, store.Schema{}, &MissingColumnsError{Columns: store.RequiredColumns}
	}
	if err != nil {
		return nil, store.Schema{}, fmt.Errorf("failed to parse header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	schema, err := detectSchema(header)
	if err != nil {
		return nil, store.Schema{}, err
	}

	var records []store.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, store.Schema{}, fmt.Errorf("failed to parse row: %w", err)
		}

		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				fields[col] = row[i]
			}
		}
		records = append(records, store.RawRecord{
			Line:   len(records) + 1,
			Fields: fields,
		})
	}

	logger.Debug().Str("file", path).Int("rows", len(records)).Msg("sales file loaded")
	return records, schema, nil
}

// decode applies the two-attempt policy: UTF-8 as-is (BOM stripped),
// then Windows-1252. Not general encoding detection.
func decode(raw []byte, path string) (string, string, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		raw = raw[len(utf8BOM):]
	}
	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", "", &DecodeError{Path: path}
	}
	return string(decoded), "windows-1252", nil
}
