package auth_test

import (
	"strconv"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/cardfolio/cardfolio/internal/auth"
)

func TestGenerateOTPShape(t *testing.T) {
	c := qt.New(t)

	for i := 0; i < 500; i++ {
		code, _ := auth.GenerateOTP()

		c.Assert(code, qt.HasLen, 6)
		n, err := strconv.Atoi(code)
		c.Assert(err, qt.IsNil)
		c.Assert(n >= 100000, qt.IsTrue, qt.Commentf("code %s below range", code))
		c.Assert(n <= 999999, qt.IsTrue, qt.Commentf("code %s above range", code))
	}
}

func TestGenerateOTPExpiry(t *testing.T) {
	c := qt.New(t)

	before := time.Now()
	_, expiry := auth.GenerateOTP()
	after := time.Now()

	c.Assert(expiry.After(before.Add(auth.OTPValidity-time.Second)), qt.IsTrue)
	c.Assert(expiry.Before(after.Add(auth.OTPValidity+time.Second)), qt.IsTrue)
}
