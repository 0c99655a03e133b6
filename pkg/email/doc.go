// Package email sends transactional mail through Postmark, with a
// file-writing development sender used when no Postmark credentials are
// configured.
package email
