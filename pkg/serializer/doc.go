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

// Package serializer reads and writes the documents gridsynth exchanges with
// the outside world.
//
// # Reading
//
// Configuration and reference files are JSON or YAML. FromFile picks the
// format from the extension and decodes into any type:
//
//	cfg, err := serializer.FromFile[config.RunConfig]("run.yaml")
//
// When declaration order matters (category mappings), ReadNode returns the
// yaml.Node tree instead; JSON parses through the same path.
//
// # Writing
//
// Writer supports three formats:
//
//   - json: indented, machine readable
//   - yaml: human readable
//   - table: nested values flattened into sorted FIELD/VALUE rows
//
// Example:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outPath)
//	defer w.Close()
//	if err := w.Serialize(ctx, summary); err != nil {
//	    return err
//	}
package serializer
