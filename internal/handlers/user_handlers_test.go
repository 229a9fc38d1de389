package handlers_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	qt "github.com/frankban/quicktest"
)

func TestGetUsersOmitsPassword(t *testing.T) {
	c := qt.New(t)
	router, mock := newTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, role, created_at FROM users")).
		WillReturnRows(mock.NewRows([]string{"id", "email", "role", "created_at"}).
			AddRow("u1a2b3c4d", "admin@cardfolio.local", "admin", time.Now()))

	status, users := doList(t, router, "/api/users")

	c.Assert(status, qt.Equals, 200)
	c.Assert(users, qt.HasLen, 1)
	c.Assert(users[0]["email"], qt.Equals, "admin@cardfolio.local")
	c.Assert(users[0]["role"], qt.Equals, "admin")
	_, hasPassword := users[0]["password"]
	c.Assert(hasPassword, qt.IsFalse)
	expectationsMet(c, mock)
}

func TestCreateUser(t *testing.T) {
	c := qt.New(t)
	router, mock := newTestApp(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, email, password, role) VALUES (?, ?, ?, ?)")).
		WithArgs(sqlmock.AnyArg(), "clerk@cardfolio.local", "hunter2", "staff").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, body := do(t, router, "POST", "/api/users", map[string]string{
		"email":    "clerk@cardfolio.local",
		"password": "hunter2",
		"role":     "staff",
	})

	c.Assert(status, qt.Equals, 200)
	c.Assert(body["success"], qt.Equals, true)
	expectationsMet(c, mock)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	c := qt.New(t)
	router, mock := newTestApp(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&duplicateKeyError{})

	status, body := do(t, router, "POST", "/api/users", map[string]string{
		"email":    "admin@cardfolio.local",
		"password": "hunter2",
		"role":     "admin",
	})

	// Constraint violations surface like any other storage failure.
	c.Assert(status, qt.Equals, 500)
	c.Assert(body["error"], qt.Equals, "Error 1062 (23000): Duplicate entry 'admin@cardfolio.local' for key 'users.email'")
	expectationsMet(c, mock)
}

type duplicateKeyError struct{}

func (*duplicateKeyError) Error() string {
	return "Error 1062 (23000): Duplicate entry 'admin@cardfolio.local' for key 'users.email'"
}

func TestDeleteUser(t *testing.T) {
	c := qt.New(t)
	router, mock := newTestApp(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = ?")).
		WithArgs("u1a2b3c4d").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, body := do(t, router, "DELETE", "/api/users/u1a2b3c4d", nil)

	c.Assert(status, qt.Equals, 200)
	c.Assert(body["success"], qt.Equals, true)
	expectationsMet(c, mock)
}
