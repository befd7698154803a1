package domain

// ErrorResponse é o envelope de erro padrão da API REST do Google Ads.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// IsAuthError indica token expirado/revogado (401) ou permissão negada (403).
func (e *ErrorResponse) IsAuthError() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}

// IsRetryable indica erro transitório do provedor (5xx ou rate limit).
func (e *ErrorResponse) IsRetryable() bool {
	return e.Error.Code >= 500 || e.Error.Code == 429 || e.Error.Status == "RESOURCE_EXHAUSTED"
}
