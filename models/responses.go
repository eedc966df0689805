// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SuccessResponse acknowledges an operation that has no resource to return,
// such as a delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the JSON envelope written for every failed request.
type ErrorResponse struct {
	Err string `json:"err"`
}
