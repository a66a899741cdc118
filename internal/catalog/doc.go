// Package catalog persists model records in SQLite. Records are created
// from library paths and enriched in place by the inference pipeline;
// enrichment never deletes rows and only fills fields, so the store is the
// durable source of truth for the collection.
package catalog
