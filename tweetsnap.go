// Package tweetsnap collects social-media post batches, enriches posts that
// carry outbound links with fetched page summaries, and persists each
// collection run as a dated JSON snapshot.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, goquery/); pipeline
// orchestration lives in collect/.
package tweetsnap
