// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the settings shared by every binary: a known storage
// driver with a DSN where one is needed and a known credential scheme.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverFile, DriverSQLite, DriverPostgres, DriverBadger:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: driver %q needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	switch cfg.App.Credentials {
	case CredentialsPlain, CredentialsBcrypt:
	default:
		return fmt.Errorf("%w: unknown credential scheme %q", ErrInvalidAppConfigs, cfg.App.Credentials)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
