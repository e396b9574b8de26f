// Package repository contains the data access layer. Sentinel errors defined
// here let handlers distinguish failure scenarios and map them to HTTP status
// codes: not-found errors become 404, ErrVenueUnavailable, ErrDuplicateEmail
// and ErrConflict become 409.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrEventNotFound indicates that an event was not located in the DB.
var ErrEventNotFound = errors.New("event not found")

// ErrClientNotFound indicates that a client was not located in the DB.
var ErrClientNotFound = errors.New("client not found")

// ErrStaffNotFound indicates that a staff member was not located in the DB.
var ErrStaffNotFound = errors.New("staff not found")

// ErrAssignmentNotFound indicates that a staff assignment was not located in the DB.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrItemNotFound indicates that an inventory item was not located in the DB.
var ErrItemNotFound = errors.New("inventory item not found")

// ErrSupplierNotFound indicates that a supplier was not located in the DB.
var ErrSupplierNotFound = errors.New("supplier not found")

// ErrVenueUnavailable is returned when another non-cancelled event already
// occupies the requested (venue, date) slot.
var ErrVenueUnavailable = errors.New("venue unavailable")

// ErrDuplicateEmail is returned when an insert or update would reuse an email
// address that another client or staff record already claims.
var ErrDuplicateEmail = errors.New("email already in use")

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as removing a client that still has events.
var ErrConflict = errors.New("conflict")

// isDuplicateKey reports whether err is a MySQL duplicate-entry violation
// (error 1062), raised by the unique indexes on client and staff emails.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
