// Package session manages visitor sessions: anonymous sessions created on
// first contact, token rotation when a user signs in, sliding expiry
// capped by a maximum lifetime, and pluggable persistence (memory,
// Postgres, Redis). Tokens travel in an encrypted cookie.
package session
