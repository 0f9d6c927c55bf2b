package ports

import "time"

// TokenCodec issues and verifies signed session tokens.
//
// Issue binds a subject id to an issued-at and expiry instant. VerifyAt takes
// the evaluation time explicitly so expiry can be tested without sleeping;
// failures are domain.ErrTokenMalformed, domain.ErrTokenSignature, or
// domain.ErrTokenExpired. VerifyAt must reject any structurally invalid input
// without panicking — it is the first code applied to untrusted client input.
type TokenCodec interface {
	Issue(subjectID int64, now time.Time) (string, error)
	VerifyAt(token string, now time.Time) (int64, error)
}
