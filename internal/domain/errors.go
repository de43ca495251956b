package domain

import "errors"

// Sentinel errors shared across services. Repositories translate storage-level
// conditions (sql.ErrNoRows, unique constraint violations) into these values;
// anything else is wrapped and surfaced as an internal error.
var (
	// ErrNotFound means a referenced entity (event, user) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller's role does not permit the action, or the
	// caller is not the owner of the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput means the request payload failed domain validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidQRFormat means a QR badge payload could not be decoded or is
	// structurally malformed.
	ErrInvalidQRFormat = errors.New("invalid qr code format")

	// ErrNotAStudent means a decoded QR badge references a user that exists
	// but does not have the STUDENT role.
	ErrNotAStudent = errors.New("qr code does not belong to a student")

	// ErrDuplicateRegistration means the student is already registered for the event.
	ErrDuplicateRegistration = errors.New("already registered for this event")

	// ErrDuplicateAttendance means attendance is already marked for the
	// (event, student) pair.
	ErrDuplicateAttendance = errors.New("attendance already marked for this student")

	// ErrDuplicateFeedback means feedback was already submitted for the
	// (event, student) pair.
	ErrDuplicateFeedback = errors.New("feedback already submitted for this event")

	// ErrNotAttended means feedback was attempted without a prior attendance record.
	ErrNotAttended = errors.New("feedback requires attendance at the event")

	// ErrDuplicateEmail means the email is already taken at signup.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials means login failed; deliberately unspecific.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
