// Package acl is the anti-corruption layer between the storefront and its
// REST backend.
//
// Backend payloads are decoded into unexported DTOs and translated into
// domain records before they leave the package. The backend is loose about
// shapes (ids arrive as strings or numbers, lists as arrays or comma
// strings, the same field under two names) and the DTOs absorb that.
//
// Failures are translated too:
//
//   - 404 → [domain.ErrNotFound]
//   - 409 → [domain.ErrConflict]
//   - 400/422 → [domain.ErrValidation], with field details when present
//   - 401/403 → [domain.ErrForbidden]
//   - 429, 5xx, transport errors and an open circuit → [domain.ErrUnavailable]
//
// [Backend] implements every downstream port over one [clients.Client], and
// doubles as the backend's readiness check.
package acl
