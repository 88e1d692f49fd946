// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// and connectors implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - StatuteSource: Statute list, content and history lookups (open API)
//   - PrecedentSource: Precedent list and content lookups (open API)
//   - PrecedentPageSource: Printable decision page, redirects not followed
//   - TaxLawSource: Decision documents of the tax-law system
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PrecedentSupplementer: Tertiary metadata for collected decisions.
//     Without it resolution skips the supplement step.
//   - HTTPDoer: Connectors fall back to their own client when nil.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
