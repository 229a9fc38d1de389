package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// OTPValidity is how long an issued code stays usable.
const OTPValidity = 5 * time.Minute

// GenerateOTP returns a 6-digit one-time passcode drawn uniformly from
// [100000, 999999] together with its expiry instant.
func GenerateOTP() (string, time.Time) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		panic(err)
	}
	code := strconv.FormatInt(n.Int64()+100000, 10)
	return code, time.Now().Add(OTPValidity)
}
