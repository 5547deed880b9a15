package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/status-im/minerstat-proxy/minerstat_coins"
	mc "github.com/status-im/minerstat-proxy/minerstat_common"
)

// handleCoins responds with coins filtered either by ticker list or by algorithm.
// Exactly one of the list and algo parameters must be present.
func (s *Server) handleCoins(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	hasList := query.Has(mc.ParamList)
	hasAlgo := query.Has(mc.ParamAlgo)

	if hasList == hasAlgo {
		s.sendJSONError(w, http.StatusBadRequest, "exactly one of 'list' or 'algo' query parameters is required")
		return
	}

	var (
		coins []minerstat_coins.Coin
		err   error
	)
	if hasList {
		coins, err = s.coinsRepo.ByName(r.Context(), splitParam(query.Get(mc.ParamList)))
	} else {
		coins, err = s.coinsRepo.ByAlgorithm(r.Context(), splitParam(query.Get(mc.ParamAlgo)))
	}
	if err != nil {
		s.sendRepositoryError(w, err)
		return
	}

	s.sendJSONResponse(w, coins)
}

// handleCoin responds with a single coin identified by its ticker
func (s *Server) handleCoin(w http.ResponseWriter, r *http.Request) {
	ticker := strings.TrimSpace(mux.Vars(r)["ticker"])
	if ticker == "" {
		s.sendJSONError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	coin, ok, err := s.coinsRepo.Get(r.Context(), ticker)
	if err != nil {
		s.sendRepositoryError(w, err)
		return
	}
	if !ok {
		s.sendJSONError(w, http.StatusNotFound, "coin not found: "+strings.ToUpper(ticker))
		return
	}

	s.sendJSONResponse(w, coin)
}

func (s *Server) sendRepositoryError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	s.logger.WithError(err).WithField("status", status).Warn("API: minerstat request failed")
	s.sendJSONError(w, status, err.Error())
}

// statusForError maps error kinds to HTTP status codes
func statusForError(err error) int {
	switch mc.KindOf(err) {
	case mc.KindTransport, mc.KindParse:
		return http.StatusBadGateway
	case mc.KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
