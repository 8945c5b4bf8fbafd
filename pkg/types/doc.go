// Package types defines the entity types, raw corpus record shapes,
// sink and lookup interfaces, and standard errors shared by the shici
// ingestion pipeline.
package types
