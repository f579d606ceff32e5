// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WriteJSON writes doc as indented, zstd-compressed JSON.
func WriteJSON(w io.Writer, doc Document) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode export: %w", err)
	}
	return zw.Close()
}

// ReadJSON reads a document written by WriteJSON.
func ReadJSON(r io.Reader) (Document, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Document{}, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	var doc Document
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode export: %w", err)
	}
	return doc, nil
}
