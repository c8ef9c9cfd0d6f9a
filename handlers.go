package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"tunes-proxy-go/logcolors"
	"tunes-proxy-go/middleware"
	"tunes-proxy-go/services/itunes"
	"tunes-proxy-go/stats"
	"tunes-proxy-go/token"
)

// loginHandler issues a signed bearer token for the supplied username.
// There is no password check: the token exists to gate the proxy, not to
// authenticate real users.
func loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Respond(w, r).Error(http.StatusBadRequest, errorResponse{Error: "Username required"})
		return
	}

	tok, err := tokenService.Issue(req.Username)
	if err != nil {
		if errors.Is(err, token.ErrEmptyIdentity) {
			Respond(w, r).Error(http.StatusBadRequest, errorResponse{Error: "Username required"})
			return
		}
		log.Errorf("%s Failed to sign token: %v", logcolors.LogLogin, err)
		Respond(w, r).Error(http.StatusInternalServerError, errorResponse{Error: "Failed to issue token"})
		return
	}

	stats.Get().RecordTokenIssued()
	log.Infof("%s Issued token for %q", logcolors.LogLogin, req.Username)
	Respond(w, r).JSON(tokenResponse{Token: tok})
}

// searchHandler proxies the query to the iTunes Search API and relays the
// response body verbatim. BearerAuth has already run; the identity is only
// used for logging.
func searchHandler(w http.ResponseWriter, r *http.Request) {
	query := itunes.Query{
		Term:  r.URL.Query().Get("term"),
		Media: r.URL.Query().Get("media"),
		Limit: parseLimit(r.URL.Query().Get("limit")),
	}

	if strings.TrimSpace(query.Term) == "" {
		Respond(w, r).Error(http.StatusBadRequest, errorResponse{Error: "Missing search term"})
		return
	}

	if ident, ok := middleware.IdentityFromContext(r.Context()); ok {
		log.Infof("%s %q searching for %q (media=%q limit=%d)", logcolors.LogSearch, ident.Username, query.Term, query.Media, query.Limit)
	}

	body, err := searchClient.Search(r.Context(), query)
	if err != nil {
		stats.Get().RecordUpstreamFailure()
		log.Errorf("%s Failed to fetch from iTunes API: %v", logcolors.LogUpstream, err)
		Respond(w, r).Error(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch from iTunes API"})
		return
	}

	Respond(w, r).Raw(body)
}

// parseLimit returns the parsed limit or zero, letting the search client
// apply its default. Upstream tolerates odd limit values, so garbage is
// ignored rather than rejected with a 400.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Warnf("%s Ignoring invalid limit %q", logcolors.LogSearch, raw)
		return 0
	}
	return n
}

// helpHandler is the unauthenticated liveness check
func helpHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("iTunes Search API Proxy with JWT is running"))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	snap := stats.Get().GetSnapshot()
	Respond(w, r).JSON(healthResponse{Status: "ok", UptimeSeconds: snap.UptimeSeconds})
}

func statsHandler(w http.ResponseWriter, r *http.Request) {
	Respond(w, r).JSON(stats.Get().GetSnapshot())
}
