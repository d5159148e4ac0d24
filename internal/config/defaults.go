// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// CredentialsPlain keeps passwords verbatim.
	CredentialsPlain = "plain"
	// CredentialsBcrypt stores bcrypt hashes.
	CredentialsBcrypt = "bcrypt"

	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Credentials:   CredentialsPlain,
			TokenIssuer:   "go-garden-keeper",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			Driver:     DriverFile,
			DSN:        "garden-keeper.json",
			GCInterval: 10 * time.Minute,
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}
