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

package resolve

import (
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/gridsynth/pkg/errors"
)

// String resolves the first present key as a string, "" when none is present.
func String(keys ...string) Resolver[string] {
	return func(_ *Context, row Row) (string, error) {
		return optionalString(row, keys...)
	}
}

// RequiredString resolves the first present key as a non-empty string.
func RequiredString(keys ...string) Resolver[string] {
	return func(_ *Context, row Row) (string, error) {
		return requireString(row, keys...)
	}
}

// Float resolves the first present key as a number. An absent or null value
// is a no-match.
func Float(keys ...string) Resolver[float64] {
	return func(_ *Context, row Row) (float64, error) {
		v, err := OptionalFloat(keys...)(nil, row)
		if err != nil {
			return 0, err
		}
		if v == nil {
			return 0, errors.NewWithContext(errors.ErrCodeNoMatch, "row is missing a required field",
				map[string]any{"fields": keys})
		}
		return *v, nil
	}
}

// OptionalFloat resolves the first present key as a number, nil when absent
// or null.
func OptionalFloat(keys ...string) Resolver[*float64] {
	return func(_ *Context, row Row) (*float64, error) {
		v, key, err := firstField(row, keys...)
		if err != nil || v == nil {
			return nil, err
		}
		f, err := toFloat(v)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "invalid numeric field", err,
				map[string]any{"field": key})
		}
		return ptr.To(f), nil
	}
}
