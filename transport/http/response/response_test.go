package response_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"elysian/shared/failure"
	"elysian/transport/http/response"

	"github.com/go-chi/chi/v5"
)

func requestWithParam(name, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(name, value)

	request := httptest.NewRequest(http.MethodGet, "/", nil)

	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
}

func TestUUIDParam(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantOK   bool
		wantCode int
	}{
		{
			name:   "well-formed uuid passes through",
			value:  "4d9f3b1e-7c2a-4e8f-9b6d-2f1a8c5e0d73",
			wantOK: true,
		},
		{
			name:     "free text is rejected before the storage layer",
			value:    "not-a-uuid",
			wantOK:   false,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty value is rejected",
			value:    "",
			wantOK:   false,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "truncated uuid is rejected",
			value:    "4d9f3b1e-7c2a-4e8f-9b6d",
			wantOK:   false,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			value, ok := response.UUIDParam(recorder, requestWithParam("id", tt.value), "id")
			if ok != tt.wantOK {
				t.Errorf("UUIDParam() ok = %v, want %v", ok, tt.wantOK)
			}

			if tt.wantOK {
				if value != tt.value {
					t.Errorf("UUIDParam() value = %q, want %q", value, tt.value)
				}

				return
			}

			if recorder.Code != tt.wantCode {
				t.Errorf("UUIDParam() wrote status %d, want %d", recorder.Code, tt.wantCode)
			}

			var body response.Error
			if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}

			if body.Kind != string(failure.KindValidation) {
				t.Errorf("UUIDParam() error kind = %q, want %q", body.Kind, failure.KindValidation)
			}
		})
	}
}
