package gateway

// Wire types owned by the transport layer. These are intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type tokenResponse struct {
	Token string `json:"token"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// backendError matches the two error envelopes the backend emits.
type backendError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e backendError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
