// Package models defines the core domain models for the contest scoring
// backend.
//
// # Models
//
//   - User: a registered voter account, identified by an opaque apikey
//   - Participant: one contest entry (country + song) in a given round
//   - Review: one user's scores for one country in one round
//
// # Design Principles
//
// 1. **Value semantics**: records are copied in and out of stores; no model
// is shared by reference across components.
// 2. **Composite review identity**: a Review is identified by the
// (user_id, country_id, round_num) triple, never by its row ID alone.
// 3. **Avoid circular references**: models reference each other by numeric
// IDs instead of pointers.
package models
