// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Field rules live in the `validate` struct tags. Violations are grouped by
// section and reported as [ErrInvalidStorageConfigs] or
// [ErrInvalidServerConfigs] wrapping the validator details.
func (cfg *StructuredConfig) validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	var joined error
	for _, fieldErr := range validationErrs {
		section := ErrInvalidServerConfigs
		if strings.HasPrefix(fieldErr.Namespace(), "StructuredConfig.Storage") {
			section = ErrInvalidStorageConfigs
		}
		joined = errors.Join(joined, fmt.Errorf("%w: %s failed on %q", section, fieldErr.Namespace(), fieldErr.Tag()))
	}

	return joined
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server URL %q is not absolute", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	return nil
}
