package gateway

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/ports"
	"github.com/bengalibowl/ordering-client/internal/gateway/metrics"
)

// bearerTransport is the authenticated channel. It reads the credential
// store on every outgoing request and attaches the token, if any, as a
// bearer header.
//
// It also carries the interceptor: any 401 response clears the store and
// forces navigation to the login entry point before the response is handed
// back, so callers always observe a post-logout state in their own error
// handling. Callers must not assume they are the last code to run before
// navigation occurs.
type bearerTransport struct {
	base  http.RoundTripper
	store ports.CredentialStore
	nav   ports.Navigator
	log   zerolog.Logger
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, err := t.store.Read(req.Context()); err == nil && token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if cerr := t.store.Clear(req.Context()); cerr != nil {
			t.log.Error().Err(cerr).Msg("failed to clear credential store after 401")
		}
		metrics.SessionEvictionsTotal.Inc()
		t.log.Warn().Str("path", req.URL.Path).Msg("unauthorized response, session evicted")
		if t.nav != nil {
			t.nav.ToLogin()
		}
	}

	return resp, nil
}
