package qr

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"campusevents/internal/domain"
)

const badgePrefix = "STUDENT"

// expected colon-separated fields: prefix, user id, student id, issued-at.
const badgeFields = 4

type codec struct {
	now func() time.Time
}

// NewCodec returns a QRCodec for student identity badges. now is used for the
// issued-at field; nil defaults to time.Now.
func NewCodec(now func() time.Time) domain.QRCodec {
	if now == nil {
		now = time.Now
	}
	return &codec{now: now}
}

func (c *codec) Encode(userID, studentID string) string {
	data := fmt.Sprintf("%s:%s:%s:%d", badgePrefix, userID, studentID, c.now().Unix())
	return base64.StdEncoding.EncodeToString([]byte(data))
}

func (c *codec) Decode(data string) (*domain.QRBadge, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, domain.ErrInvalidQRFormat
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != badgeFields {
		return nil, domain.ErrInvalidQRFormat
	}
	if parts[0] != badgePrefix || parts[1] == "" || parts[2] == "" {
		return nil, domain.ErrInvalidQRFormat
	}
	issuedAt, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidQRFormat
	}
	return &domain.QRBadge{
		UserID:    parts[1],
		StudentID: parts[2],
		IssuedAt:  issuedAt,
	}, nil
}
