// Package enrich drives the inference pipeline over cataloged records.
// A run pages through the catalog, computes a fill-only change set per
// record, and either reports it (dry run) or persists it in bounded
// transactions. Enrichment never overwrites a non-empty field unless
// forced, so curated values survive re-runs.
package enrich
