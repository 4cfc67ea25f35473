package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Identifier prefixes used across the system
const (
	OrderIDPrefix          = "FLR"
	SubscriptionIDPrefix   = "SUB"
	CorporateOrderIDPrefix = "CGT"
	ReferralCodePrefix     = "REF"
)

// randomCode returns n uppercase characters of a fresh random UUID.
// Collisions are not checked; acceptable at this scale.
func randomCode(n int) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return s[:n]
}

// GenerateOrderID returns a new order id, e.g. FLR3F2A91BC
func GenerateOrderID() string {
	return OrderIDPrefix + randomCode(8)
}

// GenerateSubscriptionID returns a new subscription id
func GenerateSubscriptionID() string {
	return SubscriptionIDPrefix + randomCode(8)
}

// GenerateCorporateOrderID returns a new corporate order id
func GenerateCorporateOrderID() string {
	return CorporateOrderIDPrefix + randomCode(8)
}

// GenerateReferralCode returns a new loyalty referral code
func GenerateReferralCode() string {
	return ReferralCodePrefix + randomCode(6)
}

// GenerateSessionToken returns a new opaque session token
func GenerateSessionToken() string {
	return uuid.NewString()
}
