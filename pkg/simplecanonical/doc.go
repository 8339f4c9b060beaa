// Package simplecanonical provides a reusable library for overriding the
// canonical URL and permalink of a published article, with an optional
// "reposted from" disclaimer prepended to the article body.
//
// It exposes a single Service interface with two halves: the metadata editor
// (EditorForm, SaveOverride), which is the only writer of the two override
// metadata keys, and the canonical resolver (CanonicalTag, CanonicalTagForURL,
// Permalink, Body), a set of stateless mappings from stored metadata and view
// context to output strings. Repository implementations (memory, Postgres)
// are provided under subpackages.
//
// Resolution Semantics
//
// Resolver methods never fail: any lookup miss or malformed input falls back
// to the caller's supplied default unchanged. The disclaimer flag is only
// honored when it is stored as exactly "true" and a canonical URL override
// is present; absence of the key is the off state. Hosts extend behavior
// through the Hooks registry (admin-context save hooks, public-context
// output filters) rather than by modifying the core.
package simplecanonical
