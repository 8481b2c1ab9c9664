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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInputAbsent, "No capacity data")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeInputAbsent {
		t.Errorf("expected code %s, got %s", ErrCodeInputAbsent, err.Code)
	}
	if err.Message != "No capacity data" {
		t.Errorf("expected message 'No capacity data', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeNoMatch, "technology %q has no category", "mystery")
	if err.Message != `technology "mystery" has no category` {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("schema mismatch")
	ctx := map[string]any{
		"dataset": "fuel_map",
		"keys":    []string{"technology"},
	}

	err := WrapWithContext(ErrCodeInvalidInput, "join skipped", cause, ctx)

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["dataset"] != "fuel_map" {
		t.Errorf("expected dataset to be fuel_map")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeAllExcluded, "All generators were excluded"),
			expected: "[ALL_EXCLUDED] All generators were excluded",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeNoMatch, "no category")
	outer := Wrap(ErrCodeTypeMismatch, "no generator type", inner)
	fmtWrapped := fmt.Errorf("row 3: %w", outer)

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"nil error", nil, ErrCodeNoMatch, false},
		{"plain error", errors.New("x"), ErrCodeNoMatch, false},
		{"direct match", inner, ErrCodeNoMatch, true},
		{"outer code", outer, ErrCodeTypeMismatch, true},
		{"inner code through outer", outer, ErrCodeNoMatch, true},
		{"through fmt wrapping", fmtWrapped, ErrCodeNoMatch, true},
		{"absent code", fmtWrapped, ErrCodeAllExcluded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
	err := fmt.Errorf("ctx: %w", New(ErrCodeConflict, "duplicate"))
	if got := CodeOf(err); got != ErrCodeConflict {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeConflict)
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeInternal,
		ErrCodeInputAbsent,
		ErrCodeInvalidInput,
		ErrCodeNoMatch,
		ErrCodeTypeMismatch,
		ErrCodeAllExcluded,
		ErrCodeConflict,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}
