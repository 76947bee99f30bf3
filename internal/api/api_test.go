package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestWriteSuccess(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteSuccess(rec, http.StatusCreated, "Successfully created account!")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	resp := decode(t, rec)
	if resp.Error {
		t.Fatal("expected error:false")
	}
	if resp.Payload != "Successfully created account!" {
		t.Fatalf("payload = %v", resp.Payload)
	}
}

func TestWriteErrorKnown(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, NewError(http.StatusBadRequest, "Email is already in use"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode(t, rec)
	if !resp.Error || resp.Payload != "Email is already in use" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestWriteErrorWrapped(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, errors.Join(errors.New("ctx"), NewError(http.StatusUnauthorized, "Unauthorized")))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrapped *Error not unwrapped, status = %d", rec.Code)
	}
}

func TestWriteErrorUnknown(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode(t, rec)
	if !resp.Error || resp.Payload != "Something went wrong" {
		t.Fatalf("internal details leaked: %+v", resp)
	}
}
