package api

import (
	"net/http"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

var errBadRequest = errors.New("bad request")

func (h *Handler) respond(w http.ResponseWriter, status int, v easyjson.Marshaler) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := easyjson.MarshalToWriter(v, buf); err != nil {
		h.logger.WithError(err).Error("failed to encode response")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, pkg.ErrInvalidIdentity),
		errors.Is(err, pkg.ErrSelfReference),
		errors.Is(err, pkg.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, pkg.ErrAlreadyBound), errors.Is(err, pkg.ErrCycleDetected):
		return http.StatusConflict
	case errors.Is(err, pkg.ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.WithField("path", r.URL.Path).WithError(err).Error("request failed")
		h.respond(w, status, pkg.ErrorResponse{Error: "internal error"})
		return
	}

	h.respond(w, status, pkg.ErrorResponse{Error: err.Error()})
}
