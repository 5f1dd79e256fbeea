package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// MaxDelay caps the delay a client can request from the demo server.
const MaxDelay = 5 * time.Second

// DelayHandler sleeps for the {ms} path variable before answering, to make
// timing visible. Requests above Max sleep for Max.
type DelayHandler struct {
	Max time.Duration
}

func (h DelayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ms, err := strconv.ParseInt(mux.Vars(r)["ms"], 10, 64)
	overflow := errors.Is(err, strconv.ErrRange)
	if err != nil && !overflow || ms < 0 {
		http.Error(w, "invalid delay", http.StatusBadRequest)
		return
	}
	// clamp in milliseconds; converting first can overflow time.Duration
	if maxMs := h.Max.Milliseconds(); overflow || ms > maxMs {
		ms = maxMs
	}
	d := time.Duration(ms) * time.Millisecond

	select {
	case <-time.After(d):
	case <-r.Context().Done():
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"slept_ms":` + strconv.FormatInt(ms, 10) + "}"))
}

