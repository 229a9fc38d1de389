package models

import "time"

// User is the model for the 'users' table. The otp_code/otp_expiry pair is
// transient second-factor state: both set on a successful credential check,
// both cleared on a successful verification.
type User struct {
	ID        string     `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"password" db:"password"`
	Role      string     `json:"role" db:"role"`
	OTPCode   *string    `json:"otp_code" db:"otp_code"`
	OTPExpiry *time.Time `json:"otp_expiry" db:"otp_expiry"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// UserSummary is the shape returned by the user list endpoint. The password
// column is never selected there.
type UserSummary struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateUserInput defines the JSON input for creating a user.
type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput defines the JSON input for login step 1.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPInput defines the JSON input for login step 2.
type VerifyOTPInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
