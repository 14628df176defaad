// Package repository implements SQL-backed persistence for users, device
// controls, health telemetry and page content. Sentinel errors defined here
// let handlers map storage failures onto HTTP status codes without inspecting
// driver errors.
package repository

import "errors"

// ErrNotFound is returned when a looked-up row does not exist. Handlers
// translate it to HTTP 404 (or 401 during credential resolution).
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an insert violates the unique email
// constraint. Handlers translate it to HTTP 400.
var ErrEmailExists = errors.New("email already registered")
