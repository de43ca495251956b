package domain

// QRBadge is the decoded content of a student identity badge.
type QRBadge struct {
	UserID    string
	StudentID string
	IssuedAt  int64
}

// QRCodec encodes and decodes student identity badges. It is pure data
// transformation; it performs no authorization or existence checks.
//
// Wire format: `STUDENT:<userId>:<studentId>:<issuedAtEpochSeconds>`,
// base64-encoded with the standard alphabet, no line wrapping.
type QRCodec interface {
	Encode(userID, studentID string) string
	// Decode reverses the base64 layer and splits the payload. It returns
	// ErrInvalidQRFormat when the encoding cannot be reversed, a field is
	// missing or empty, or the timestamp is not an integer.
	Decode(data string) (*QRBadge, error)
}
