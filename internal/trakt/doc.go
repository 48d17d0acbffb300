// Package trakt implements a typed client for the Trakt list API and the
// OAuth2 authorization-code session used to obtain bearer tokens.
//
// # Client
//
// [Client.doRequest] centralizes request plumbing: every call carries the
// JSON content type, the bearer token, the trakt-api-version header and the
// trakt-api-key header (the application client id).
//
// # Error Handling
//
// Status codes map onto the shared sentinel taxonomy:
//   - 403 on any call  : [shared.ErrAuthExpired], recovered by reauthorization
//   - 404 on list items: [shared.ErrListNotFound], treated as an empty list upstream
//   - 404 on existence : false, not an error
//   - 420 on create    : [shared.ErrQuotaExceeded]
//   - other non-2xx    : [StatusError] wrapping [shared.ErrAPIRequest], fatal
//
// Responses decode into explicit schemas ([SearchResult], [ListItem], [List],
// [AddItemsResult]); a shape mismatch fails the decode loudly instead of
// surfacing as a missing-key panic at use sites.
//
// # Authorization
//
// [AuthSession] wraps [oauth2.Config] with Trakt's authorize and token
// endpoints and the out-of-band redirect URI. Tokens persist write-through
// via [TokenStore] immediately after every successful exchange.
package trakt
