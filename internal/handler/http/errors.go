// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request body errors. Both end up as a 500 like any other handler failure.
var (
	ErrReadingBody = errors.New("error reading request body")
	ErrInvalidBody = errors.New("request body must be a JSON object")
)
