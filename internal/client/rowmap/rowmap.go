// Package rowmap converts between stored rows and the cache's domain models.
//
// Every entity has a scan function reading one row in the column order of its
// *Columns variable, and a payload function producing the columns and values
// to write. Scans go through sql.Null* destinations so that a NULL where the
// model has no room for one is reported as a *DataIntegrityError instead of
// silently becoming a zero value.
package rowmap

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/imgurcache/internal/common"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Payload is an ordered column/value list for an INSERT or UPDATE.
type Payload struct {
	Columns []string
	Values  []any
}

// DataIntegrityError reports a stored row that does not fit its model.
type DataIntegrityError struct {
	Entity string
	Column string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: %s.%s is null", e.Entity, e.Column)
}

func (e *DataIntegrityError) Is(target error) bool {
	return target == common.ErrDataIntegrity
}

// requireInt64 and requireString turn a NULL into a DataIntegrityError.
func requireInt64(entity, column string, v sql.NullInt64, dst *int64) error {
	if !v.Valid {
		return &DataIntegrityError{Entity: entity, Column: column}
	}
	*dst = v.Int64
	return nil
}

func requireString(entity, column string, v sql.NullString, dst *string) error {
	if !v.Valid {
		return &DataIntegrityError{Entity: entity, Column: column}
	}
	*dst = v.String
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
