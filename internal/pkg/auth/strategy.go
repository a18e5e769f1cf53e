package auth

import "time"

// Strategy issues and verifies the opaque tokens the API hands out at login.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
