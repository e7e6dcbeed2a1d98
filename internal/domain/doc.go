// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (ids, sets, sealed passwords, persisted records)
// and contracts (interfaces) only.
package domain
