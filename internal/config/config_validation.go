// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Cache.Address != "" && cfg.Storage.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache TTL must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: HTTP address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}
