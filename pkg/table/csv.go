// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// CSVOptions controls CSV decoding.
type CSVOptions struct {
	// Rename maps source header names to column names.
	Rename map[string]string
	// Strings lists columns kept as strings even when numeric.
	Strings []string
}

// ReadCSV decodes a CSV document with a header row. Empty cells are null.
// A column whose non-empty cells all parse as integers becomes int64, one
// whose cells all parse as floats becomes float64, and otherwise strings.
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "failed to parse CSV", err)
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "CSV has no header")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if n, ok := opts.Rename[h]; ok {
			h = n
		}
		header[i] = h
	}

	body := records[1:]
	rows := make([][]any, len(body))
	for i := range body {
		rows[i] = make([]any, len(header))
	}
	for j, col := range header {
		asString := false
		for _, s := range opts.Strings {
			if s == col {
				asString = true
			}
		}
		convert := inferColumn(body, j, asString)
		for i, rec := range body {
			rows[i][j] = convert(strings.TrimSpace(rec[j]))
		}
	}
	return New(header, rows...)
}

// ReadCSVFile opens path and decodes it with ReadCSV.
func ReadCSVFile(path string, opts CSVOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInputAbsent, "failed to open CSV", err,
			map[string]any{"path": path})
	}
	defer f.Close()
	return ReadCSV(f, opts)
}

func inferColumn(body [][]string, j int, asString bool) func(string) any {
	isInt, isFloat := !asString, !asString
	for _, rec := range body {
		s := strings.TrimSpace(rec[j])
		if s == "" {
			continue
		}
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isFloat = false
			}
		}
	}
	return func(s string) any {
		if s == "" {
			return nil
		}
		switch {
		case isInt:
			n, _ := strconv.ParseInt(s, 10, 64)
			return n
		case isFloat:
			f, _ := strconv.ParseFloat(s, 64)
			return f
		default:
			return s
		}
	}
}
