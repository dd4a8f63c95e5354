package kratos

import (
	"net/http"

	"auth-facade/app/domain"
)

// transformKratosError maps Kratos API failures to domain errors. Conflicts
// and misses become their typed counterparts; everything else is treated as a
// transient provider failure so no raw provider error reaches callers.
func transformKratosError(err error, httpResp *http.Response, operation string) error {
	if httpResp != nil {
		switch httpResp.StatusCode {
		case http.StatusConflict:
			return domain.ErrIdentityConflict
		case http.StatusNotFound:
			return domain.ErrIdentityNotFound
		case http.StatusBadRequest:
			// Kratos reports duplicate identifiers on admin identity
			// creation as a 400 with a conflict message in the body.
			if operation == "create_identity" {
				return domain.ErrIdentityConflict
			}
			return domain.NewAuthError(domain.ErrCodeInternal,
				"kratos rejected "+operation, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.ErrInvalidProviderToken
		}
	}

	return domain.NewAuthError(domain.ErrCodeProviderUnavailable,
		"kratos "+operation+" failed", domain.ErrProviderUnavailable)
}

// getHTTPStatus safely extracts the status code for logging
func getHTTPStatus(httpResp *http.Response) int {
	if httpResp == nil {
		return 0
	}
	return httpResp.StatusCode
}
