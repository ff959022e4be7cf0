package codestore

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sqlx "github.com/jmoiron/sqlx"

	huffman "github.com/chronos-tachyon/huffmantree"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(sqlx.NewDb(db, "mysql"), nil), mock
}

func checkExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func demoTable(t *testing.T) *huffman.CodeTable {
	t.Helper()
	c, err := huffman.NewCodec(huffman.Symbols("aaab"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	return c.Table()
}

func TestRows(t *testing.T) {
	c, err := huffman.NewCodec(huffman.Symbols("aaab"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	expect := []CodeRow{
		{TableName: "demo", Symbol: 'a', Code: "1"},
		{TableName: "demo", Symbol: 'b', Code: "0"},
	}
	actual := Rows("demo", c.Table())
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong rows:\n\texpect: %v\n\tactual: %v", expect, actual)
	}

	table, err := TableFromRows(actual)
	if err != nil {
		t.Fatalf("TableFromRows failed: %v", err)
	}
	if !reflect.DeepEqual(c.Table().Codes(), table.Codes()) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", c.Table().Codes(), table.Codes())
	}
}

func TestTableFromRows_Invalid(t *testing.T) {
	rows := []CodeRow{
		{TableName: "bad", Symbol: 1, Code: "1"},
		{TableName: "bad", Symbol: 2, Code: "10"},
	}
	_, err := TableFromRows(rows)
	if !errors.Is(err, huffman.ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}

func TestErrQuery(t *testing.T) {
	err := error(&ErrQuery{Op: "load", Table: "demo", Err: ErrNotFound})

	expect := `codestore: load "demo": code table not found`
	if err.Error() != expect {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expect, err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected errors.Is(err, ErrNotFound)")
	}
}

func TestStore_Init(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS huffman_codes")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.Init(context.Background()); err != nil {
		t.Errorf("Init failed: %v", err)
	}
	checkExpectations(t, mock)
}

func TestStore_Save(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).
		WithArgs("demo").
		WillReturnResult(sqlmock.NewResult(0, 2))
	insert := regexp.QuoteMeta("INSERT INTO huffman_codes (table_name, symbol, code) VALUES (?, ?, ?)")
	mock.ExpectExec(insert).
		WithArgs("demo", int64('a'), "1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).
		WithArgs("demo", int64('b'), "0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := store.Save(context.Background(), "demo", demoTable(t)); err != nil {
		t.Errorf("Save failed: %v", err)
	}
	checkExpectations(t, mock)
}

func TestStore_SaveRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	failure := errors.New("duplicate key")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).
		WithArgs("demo").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO huffman_codes")).
		WillReturnError(failure)
	mock.ExpectRollback()

	err := store.Save(context.Background(), "demo", demoTable(t))
	if !errors.Is(err, failure) {
		t.Errorf("expected insert failure, got %v", err)
	}
	var qe *ErrQuery
	if !errors.As(err, &qe) || qe.Op != "insert" {
		t.Errorf("expected *ErrQuery with Op %q, got %#v", "insert", err)
	}
	checkExpectations(t, mock)
}

func TestStore_Load(t *testing.T) {
	store, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"table_name", "symbol", "code"}).
		AddRow("demo", int64('a'), "1").
		AddRow("demo", int64('b'), "0")
	mock.ExpectQuery(regexp.QuoteMeta(querySelect)).
		WithArgs("demo").
		WillReturnRows(rows)

	table, err := store.Load(context.Background(), "demo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	expect := demoTable(t).Codes()
	if actual := table.Codes(); !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
	checkExpectations(t, mock)
}

func TestStore_LoadNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(querySelect)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "symbol", "code"}))

	_, err := store.Load(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	checkExpectations(t, mock)
}

func TestStore_LoadErrors(t *testing.T) {
	store, mock := newMockStore(t)
	failure := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(querySelect)).
		WithArgs("demo").
		WillReturnError(failure)
	mock.ExpectQuery(regexp.QuoteMeta(querySelect)).
		WithArgs("bad").
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "symbol", "code"}).
			AddRow("bad", int64(1), "1").
			AddRow("bad", int64(2), "10"))

	if _, err := store.Load(context.Background(), "demo"); !errors.Is(err, failure) {
		t.Errorf("expected query failure, got %v", err)
	}
	if _, err := store.Load(context.Background(), "bad"); !errors.Is(err, huffman.ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
	checkExpectations(t, mock)
}

func TestStore_DeleteAndNames(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).
		WithArgs("demo").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta(queryNames)).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("alpha").
			AddRow("beta"))

	if err := store.Delete(context.Background(), "demo"); err != nil {
		t.Errorf("Delete failed: %v", err)
	}

	names, err := store.Names(context.Background())
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if expect := []string{"alpha", "beta"}; !reflect.DeepEqual(expect, names) {
		t.Errorf("wrong names:\n\texpect: %v\n\tactual: %v", expect, names)
	}
	checkExpectations(t, mock)
}
