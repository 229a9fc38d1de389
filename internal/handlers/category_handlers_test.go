package handlers_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	qt "github.com/frankban/quicktest"
)

func TestCategoryLifecycle(t *testing.T) {
	c := qt.New(t)
	router, mock := newTestApp(t)

	// Create
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO categories (id, name) VALUES (?, ?)")).
		WithArgs(sqlmock.AnyArg(), "Booster Boxes").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, body := do(t, router, "POST", "/api/categories", map[string]string{"name": "Booster Boxes"})
	c.Assert(status, qt.Equals, 200)
	c.Assert(body["success"], qt.Equals, true)

	// List includes the new row with its generated id
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories")).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow("c1d2e3f4g", "Booster Boxes"))

	status, categories := doList(t, router, "/api/categories")
	c.Assert(status, qt.Equals, 200)
	c.Assert(categories, qt.HasLen, 1)
	c.Assert(categories[0]["name"], qt.Equals, "Booster Boxes")
	c.Assert(categories[0]["id"], qt.Equals, "c1d2e3f4g")

	// Delete by the generated id
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = ?")).
		WithArgs("c1d2e3f4g").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, body = do(t, router, "DELETE", "/api/categories/c1d2e3f4g", nil)
	c.Assert(status, qt.Equals, 200)
	c.Assert(body["success"], qt.Equals, true)

	expectationsMet(c, mock)
}

func TestDeleteCategoryIdempotent(t *testing.T) {
	c := qt.New(t)
	router, mock := newTestApp(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = ?")).
		WithArgs("nosuchid1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	status, body := do(t, router, "DELETE", "/api/categories/nosuchid1", nil)

	c.Assert(status, qt.Equals, 200)
	c.Assert(body["success"], qt.Equals, true)
	expectationsMet(c, mock)
}
