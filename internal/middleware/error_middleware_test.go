package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/middleware"
	"github.com/yigit/internlink/internal/pkg/apperrors"
	"github.com/yigit/internlink/internal/pkg/auth"
)

func handleError(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	middleware.HandleAPIError(c, err)

	var body dto.ErrorResponse
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &body); decodeErr != nil {
		t.Fatalf("response body is not an error envelope: %v", decodeErr)
	}
	return recorder.Code, &body
}

func TestHandleAPIErrorTokenSentinels(t *testing.T) {
	status, body := handleError(t, auth.ErrExpiredToken)
	if status != http.StatusUnauthorized {
		t.Errorf("expired token: expected 401, got %d", status)
	}
	if body.Error.Code != dto.ErrorCodeExpiredToken {
		t.Errorf("expired token: expected code %s, got %s", dto.ErrorCodeExpiredToken, body.Error.Code)
	}

	for _, err := range []error{auth.ErrInvalidToken, auth.ErrInvalidFormat} {
		status, body := handleError(t, err)
		if status != http.StatusUnauthorized {
			t.Errorf("%v: expected 401, got %d", err, status)
		}
		if body.Error.Code != dto.ErrorCodeInvalidToken {
			t.Errorf("%v: expected code %s, got %s", err, dto.ErrorCodeInvalidToken, body.Error.Code)
		}
	}
}

func TestHandleAPIErrorConflictAnswers400(t *testing.T) {
	status, body := handleError(t, apperrors.NewConflictError("An account with this email already exists."))
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if body.Error.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Errorf("expected code %s, got %s", dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
	}
	if body.Error.Message != "An account with this email already exists." {
		t.Errorf("conflict message dropped, got %q", body.Error.Message)
	}
}

func TestHandleAPIErrorForbiddenKeepsMessage(t *testing.T) {
	status, body := handleError(t, apperrors.NewForbiddenError("You do not have access to this internship."))
	if status != http.StatusForbidden {
		t.Errorf("expected 403, got %d", status)
	}
	if body.Error.Message != "You do not have access to this internship." {
		t.Errorf("denial message dropped, got %q", body.Error.Message)
	}
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	status, body := handleError(t, apperrors.ErrInternshipNotFound)
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if body.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("expected code %s, got %s", dto.ErrorCodeResourceNotFound, body.Error.Code)
	}
}

func TestHandleAPIErrorUnknownIsInternal(t *testing.T) {
	status, body := handleError(t, errors.New("pool exhausted"))
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if body.Error.Message == "pool exhausted" {
		t.Error("internal error detail leaked to the client")
	}
}
