package postgres

import _ "embed"

// Schema DDL de las tablas del negocio; cmd/create_user lo aplica con -init-schema.
//
//go:embed migrations/001_init.sql
var Schema string
