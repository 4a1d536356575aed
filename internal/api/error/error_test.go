package error

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{code: BadRequest, want: http.StatusBadRequest},
		{code: RecipeNotFound, want: http.StatusNotFound},
		{code: ImageHostError, want: http.StatusBadGateway},
		{code: UnsupportedMediaType, want: http.StatusUnsupportedMediaType},
		{code: PayloadTooLarge, want: http.StatusRequestEntityTooLarge},
		{code: InternalServerError, want: http.StatusInternalServerError},
		{code: UnknownError, want: 0},
	}
	for _, tt := range tests {
		if got := tt.code.StatusCode(); got != tt.want {
			t.Errorf("%s.StatusCode() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestEncodeError(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := EncodeError(rec, RecipeNotFound, "recipe not found", "01ABC"); err != nil {
		t.Fatalf("EncodeError() error = %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body Error
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	want := Error{Status: 404, Code: RecipeNotFound, Message: "recipe not found", ErrorID: "01ABC"}
	if body != want {
		t.Errorf("body = %+v, want %+v", body, want)
	}
}

func TestEncodeInternalError_UnknownCodeFallsBackTo500(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = EncodeError(rec, UnknownError, "something happened", "id")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	rec = httptest.NewRecorder()
	_ = EncodeInternalError(rec, "id")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
