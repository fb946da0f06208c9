package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the machine-readable failure taxonomy. Handlers map kinds to HTTP
// status codes through Code; callers branch on kinds through Is.
type Kind string

const (
	KindNotFound               Kind = "NOT_FOUND"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindRoomConflict           Kind = "ROOM_CONFLICT"
	KindDuplicateRequest       Kind = "DUPLICATE_REQUEST"
	KindValidation             Kind = "VALIDATION_ERROR"
	KindPaymentExceedsBalance  Kind = "PAYMENT_EXCEEDS_BALANCE"
	KindUnauthorized           Kind = "UNAUTHORIZED"
	KindForbidden              Kind = "FORBIDDEN"
	KindInternal               Kind = "INTERNAL_ERROR"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// Forbidden returns a new Failure with code for forbidden requests.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName + " not found",
	}
}

// InvalidStateTransition reports an operation that is not legal from the
// booking's current status.
func InvalidStateTransition(from, to string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidStateTransition,
		Message: fmt.Sprintf("cannot transition booking from %s to %s", from, to),
	}
}

// RoomConflict reports that the availability re-check failed at transition time.
func RoomConflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindRoomConflict,
		Message: msg,
	}
}

// DuplicateRequest reports that a pending request already exists for the contact.
func DuplicateRequest(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateRequest,
		Message: msg,
	}
}

// PaymentExceedsBalance reports an amount above the booking's outstanding balance.
func PaymentExceedsBalance(outstanding float64) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindPaymentExceedsBalance,
		Message: fmt.Sprintf("payment exceeds balance, outstanding: %.2f", outstanding),
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// Is reports whether err carries the given failure kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
