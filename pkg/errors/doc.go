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

// Package errors provides structured error types for better observability
// and programmatic error handling across the synthesis engine.
//
// The codes mirror how callers react to a failure:
//
//   - ErrCodeInputAbsent: a required input is missing; the invocation stops.
//   - ErrCodeInvalidInput: a record or schema is malformed; the record is skipped.
//   - ErrCodeNoMatch, ErrCodeTypeMismatch: a row cannot be resolved; the row is skipped.
//   - ErrCodeAllExcluded: skips left nothing usable; the invocation stops.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidInput,
//	    "failed to join optional dataset",
//	    cause,
//	    map[string]any{
//	        "dataset": "fuel_map",
//	        "keys":    keys,
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeNoMatch) {
//	    // skip the row and continue
//	}
package errors
