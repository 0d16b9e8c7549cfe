// internal/dberrors/errors.go

// Package dberrors translates MySQL driver errors into the error taxonomy
// callers of the storage layer program against: unique-constraint breaches,
// not-null breaches and referential-integrity breaches. Everything else
// passes through unchanged.
package dberrors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers.
const (
	codeDuplicateEntry   = 1062
	codeColumnCannotNull = 1048
	codeNoDefaultValue   = 1364
	codeRowIsReferenced  = 1451
	codeNoReferencedRow  = 1452
)

// UniqueViolationError reports an insert or update that would duplicate a
// unique column. Field names the offending column when it can be derived
// from the index name.
type UniqueViolationError struct {
	Field string
	Err   error
}

func (e *UniqueViolationError) Error() string {
	if e.Field == "" {
		return "unique constraint violation"
	}
	return fmt.Sprintf("unique constraint violation on %s", e.Field)
}

func (e *UniqueViolationError) Unwrap() error { return e.Err }

// NotNullError reports a required column that was omitted or set to NULL.
type NotNullError struct {
	Field string
	Err   error
}

func (e *NotNullError) Error() string {
	if e.Field == "" {
		return "not-null constraint violation"
	}
	return fmt.Sprintf("not-null constraint violation on %s", e.Field)
}

func (e *NotNullError) Unwrap() error { return e.Err }

// ForeignKeyError reports a write that references a missing parent row, or
// a delete blocked by dependent rows.
type ForeignKeyError struct {
	Constraint string
	Err        error
}

func (e *ForeignKeyError) Error() string {
	if e.Constraint == "" {
		return "referential integrity violation"
	}
	return fmt.Sprintf("referential integrity violation (%s)", e.Constraint)
}

func (e *ForeignKeyError) Unwrap() error { return e.Err }

var (
	// "Duplicate entry 'x' for key 'products.uq_products_sku'"
	dupKeyRe = regexp.MustCompile(`for key '([^']+)'`)
	// "Column 'email' cannot be null"
	nullColumnRe = regexp.MustCompile(`Column '([^']+)'`)
	// "Field 'email' doesn't have a default value"
	noDefaultRe = regexp.MustCompile(`Field '([^']+)'`)
	// "... CONSTRAINT `fk_orders_customer` FOREIGN KEY ..."
	constraintRe = regexp.MustCompile("CONSTRAINT `([^`]+)`")
)

// Translate maps a MySQL error onto the taxonomy above. Non-MySQL errors
// (including nil) are returned as-is.
func Translate(err error) error {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return err
	}

	switch myErr.Number {
	case codeDuplicateEntry:
		return &UniqueViolationError{Field: fieldFromDuplicateKey(myErr.Message), Err: err}
	case codeColumnCannotNull:
		return &NotNullError{Field: firstMatch(nullColumnRe, myErr.Message), Err: err}
	case codeNoDefaultValue:
		return &NotNullError{Field: firstMatch(noDefaultRe, myErr.Message), Err: err}
	case codeRowIsReferenced, codeNoReferencedRow:
		return &ForeignKeyError{Constraint: firstMatch(constraintRe, myErr.Message), Err: err}
	}
	return err
}

// IsConstraintViolation reports whether err is any of the three taxonomy
// errors produced by Translate.
func IsConstraintViolation(err error) bool {
	var unique *UniqueViolationError
	var notNull *NotNullError
	var fk *ForeignKeyError
	return errors.As(err, &unique) || errors.As(err, &notNull) || errors.As(err, &fk)
}

// fieldFromDuplicateKey extracts a column name out of a duplicate-key
// message. Unique indexes are named uq_<table>_<column>, so the column is
// whatever follows the table segment; an unrecognized index name is
// returned verbatim.
func fieldFromDuplicateKey(message string) string {
	key := firstMatch(dupKeyRe, message)
	if key == "" {
		return ""
	}
	// The server prefixes the key with the table name: "products.uq_products_sku".
	var table string
	if i := strings.LastIndex(key, "."); i >= 0 {
		table = key[:i]
		key = key[i+1:]
	}
	if table != "" {
		if field, ok := strings.CutPrefix(key, "uq_"+table+"_"); ok {
			return field
		}
	}
	if key == "PRIMARY" {
		return "id"
	}
	return key
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
