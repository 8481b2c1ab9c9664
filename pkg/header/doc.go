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

// Package header provides the common document header for gridsynth files.
//
// Every document gridsynth writes (network summaries, categorization results,
// disaggregation reports) and the run configuration it reads start with the
// same Kubernetes-style fields:
//
//	kind: NetworkSummary
//	apiVersion: gridsynth.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2026-01-12T10:30:00Z"
//	  version: v0.3.0
//
// Create a header with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindNetworkSummary),
//	    header.WithMetadata("case", "test_Pacific"),
//	)
//
// Or initialize an embedded header in place:
//
//	var s Summary
//	s.Init(header.KindNetworkSummary, header.APIVersion, version)
//
// Readers call Check to reject documents of the wrong kind. Files without a
// header are accepted so that hand-written configuration stays short.
package header
