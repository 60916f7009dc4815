package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wrenware/repovis/internal/domain"
)

func TestErrMissingInput_CanBeDetectedWithErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("reading username: %w", domain.ErrMissingInput)
	if !errors.Is(wrapped, domain.ErrMissingInput) {
		t.Error("expected errors.Is to detect ErrMissingInput in wrapped error")
	}
}

func TestAPIError_CanBeDetectedWithErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("updating visibility: %w", &domain.APIError{StatusCode: 403, Body: "forbidden"})
	var apiErr *domain.APIError
	if !errors.As(wrapped, &apiErr) {
		t.Fatal("expected errors.As to detect APIError in wrapped error")
	}
	if apiErr.StatusCode != 403 {
		t.Errorf("expected status 403, got %d", apiErr.StatusCode)
	}
}

func TestAPIError_MessageCarriesResponseBody(t *testing.T) {
	err := &domain.APIError{StatusCode: 422, Body: `{"message":"Validation Failed"}`}
	if !strings.Contains(err.Error(), "Validation Failed") {
		t.Errorf("expected error message to carry the response body, got %q", err.Error())
	}
}

func TestVisibilityTag(t *testing.T) {
	private := true
	public := false
	cases := []struct {
		name string
		repo domain.Repository
		want string
	}{
		{"unknown", domain.Repository{Name: "foo"}, ""},
		{"private", domain.Repository{Name: "foo", Private: &private}, "private"},
		{"public", domain.Repository{Name: "foo", Private: &public}, "public"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.repo.VisibilityTag(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
