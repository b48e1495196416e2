// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package load imports external render descriptions as plain data:
// yaml scene files describing a render setup and its primitives, and
// binary glTF files supplying triangle meshes. Loaders return data
// structures only; turning them into scene primitives is the caller's
// job, keeping this package free of renderer dependencies.
//
// Package load is provided as part of the trace (ray trace) renderer.
package load
