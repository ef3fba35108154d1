package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/sportarena/api/internal/domain/auction"
	"github.com/sportarena/api/internal/platform/resilience"
	"github.com/sportarena/api/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_StatusTable(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		httpStatus int
		status     string
	}{
		{"invalid input", usecase.ErrInvalidInput, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"not found", usecase.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", usecase.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden, "PERMISSION_DENIED"},
		{"budget exceeded", auction.ErrBudgetExceeded, http.StatusUnprocessableEntity, "FAILED_PRECONDITION"},
		{"bid too low", auction.ErrBidTooLow, http.StatusConflict, "ABORTED"},
		{"no active round", auction.ErrNoActiveRound, http.StatusConflict, "ABORTED"},
		{"round in progress", auction.ErrRoundInProgress, http.StatusConflict, "ABORTED"},
		{"player sold", auction.ErrPlayerSold, http.StatusConflict, "ABORTED"},
		{"conflict", usecase.ErrConflict, http.StatusConflict, "ABORTED"},
		{"dependency down", usecase.ErrDependencyUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"circuit open", resilience.ErrCircuitOpen, http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(fmt.Errorf("wrapped: %w", tc.err))
			if mapped.HTTPStatus != tc.httpStatus {
				t.Fatalf("unexpected http status: got=%d want=%d", mapped.HTTPStatus, tc.httpStatus)
			}
			if mapped.Status != tc.status {
				t.Fatalf("unexpected status: got=%s want=%s", mapped.Status, tc.status)
			}
		})
	}
}
