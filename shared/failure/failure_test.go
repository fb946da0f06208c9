package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"elysian/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		kind    failure.Kind
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, tt.failure.Kind)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("validation failed")),
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "validation failed",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("custom bad request"),
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "custom bad request",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			kind:    failure.KindUnauthorized,
			message: "token expired",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("access denied"),
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
			message: "access denied",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			kind:    failure.KindInternal,
			message: "database connection failed",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking"),
			code:    http.StatusNotFound,
			kind:    failure.KindNotFound,
			message: "booking not found",
		},
		{
			name:    "InvalidStateTransition",
			err:     failure.InvalidStateTransition("checked_out", "checked_in"),
			code:    http.StatusConflict,
			kind:    failure.KindInvalidStateTransition,
			message: "cannot transition booking from checked_out to checked_in",
		},
		{
			name:    "RoomConflict",
			err:     failure.RoomConflict("room 101 is no longer available for the requested dates"),
			code:    http.StatusConflict,
			kind:    failure.KindRoomConflict,
			message: "room 101 is no longer available for the requested dates",
		},
		{
			name:    "DuplicateRequest",
			err:     failure.DuplicateRequest("a pending request already exists for this contact"),
			code:    http.StatusConflict,
			kind:    failure.KindDuplicateRequest,
			message: "a pending request already exists for this contact",
		},
		{
			name:    "PaymentExceedsBalance",
			err:     failure.PaymentExceedsBalance(150.50),
			code:    http.StatusBadRequest,
			kind:    failure.KindPaymentExceedsBalance,
			message: "payment exceeds balance, outstanding: 150.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, f.Kind)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetKindAndIs(t *testing.T) {
	err := failure.RoomConflict("taken")

	if failure.GetKind(err) != failure.KindRoomConflict {
		t.Errorf("expected kind to be %s, got %s", failure.KindRoomConflict, failure.GetKind(err))
	}
	if !failure.Is(err, failure.KindRoomConflict) {
		t.Error("expected Is to match the failure's kind")
	}
	if failure.Is(err, failure.KindNotFound) {
		t.Error("expected Is to reject a different kind")
	}
	if failure.GetKind(errors.New("plain")) != failure.KindInternal {
		t.Error("expected plain errors to map to the internal kind")
	}
}
