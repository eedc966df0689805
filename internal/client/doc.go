// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It checks that the todo server answers before handing the terminal over to
// the UI, so a wrong address fails fast with a readable error instead of an
// empty screen.
package client
