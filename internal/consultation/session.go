package consultation

import "net/http"

// SessionHeader carries the caller's session token.
const SessionHeader = "X-Session-Token"

// SessionValidator checks whether a session token identifies an
// authenticated caller. Session issuance itself lives outside this service.
type SessionValidator interface {
	Validate(token string) bool
}

// StaticTokenValidator accepts a single pre-shared session token. An empty
// configured token rejects everything.
type StaticTokenValidator struct {
	Token string
}

func (v StaticTokenValidator) Validate(token string) bool {
	return v.Token != "" && token == v.Token
}

// RequireSession rejects requests without a valid session token before the
// handler (and therefore the engine) ever runs.
func RequireSession(v SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.Validate(r.Header.Get(SessionHeader)) {
				respondError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
