package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/coinsurf-com/invite/pkg/access"
	"github.com/coinsurf-com/invite/pkg/metrics"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CallerHeader carries the identity a request acts as. Authenticating it is the gateway's job.
const CallerHeader = "X-Caller"

const defaultPageSize = 10

// Admin is the subset of role management exposed over HTTP.
type Admin interface {
	access.Authorizer
	Snapshot() pkg.Roles
	TransferOwnership(ctx context.Context, caller, owner common.Address) error
	RenounceOwnership(ctx context.Context, caller common.Address) error
	GrantOperator(ctx context.Context, caller, operator common.Address) error
	RevokeOperator(ctx context.Context, caller, operator common.Address) error
}

type Handler struct {
	referral pkg.Referral
	admin    Admin
	metrics  *metrics.Metrics
	logger   *logrus.Logger

	MaxPageSize uint64
}

func NewHandler(logger *logrus.Logger, referral pkg.Referral, admin Admin, m *metrics.Metrics) *Handler {
	return &Handler{
		referral:    referral,
		admin:       admin,
		metrics:     m,
		logger:      logger,
		MaxPageSize: 100,
	}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/users/{address}", h.getUser)
		r.Get("/records/{address}", h.pageRecords)
		r.Get("/bind/check", h.checkBind)
		r.Post("/bind", h.bind)

		r.Route("/admin", func(r chi.Router) {
			r.With(h.authorize(access.Operate)).Get("/roles", h.roles)
			r.With(h.authorize(access.TransferOwnership)).Put("/owner", h.transferOwnership)
			r.With(h.authorize(access.RenounceOwnership)).Delete("/owner", h.renounceOwnership)
			r.With(h.authorize(access.GrantOperator)).Put("/operators/{address}", h.grantOperator)
			r.With(h.authorize(access.RevokeOperator)).Delete("/operators/{address}", h.revokeOperator)
		})
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		h.logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

// authorize turns away callers the roles do not allow to run action.
func (h *Handler) authorize(action access.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			from, err := caller(r)
			if err != nil {
				h.fail(w, r, err)
				return
			}

			if !h.admin.IsAuthorized(from, action) {
				h.fail(w, r, errors.Wrapf(pkg.ErrUnauthorized, "%s by %s", action, from.Hex()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func caller(r *http.Request) (common.Address, error) {
	return pkg.ParseAddress(r.Header.Get(CallerHeader))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	addr, err := pkg.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, h.referral.User(addr))
}

func (h *Handler) checkBind(w http.ResponseWriter, r *http.Request) {
	from, err := caller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	parent, err := pkg.ParseAddress(r.URL.Query().Get("parent"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, pkg.Eligibility{Eligible: h.referral.CheckBind(from, parent)})
}

func (h *Handler) bind(w http.ResponseWriter, r *http.Request) {
	from, err := caller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req pkg.BindRequest
	if err = easyjson.UnmarshalFromReader(r.Body, &req); err != nil {
		h.fail(w, r, errors.Wrap(errBadRequest, err.Error()))
		return
	}

	parent, err := pkg.ParseAddress(req.Parent)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	start := time.Now()
	record, err := h.referral.Bind(r.Context(), from, parent)
	h.metrics.ObserveBind(start, err)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, record)
}

func queryUint(r *http.Request, name string, fallback uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errBadRequest, "%s must be a non-negative integer", name)
	}
	return v, nil
}

func (h *Handler) pageRecords(w http.ResponseWriter, r *http.Request) {
	parent, err := pkg.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := queryUint(r, "page", 1)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	size, err := queryUint(r, "size", defaultPageSize)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if size > h.MaxPageSize {
		size = h.MaxPageSize
	}

	total, items, err := h.referral.Page(parent, page, size)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, pkg.Page{Total: total, Items: items})
}

func (h *Handler) roles(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, h.admin.Snapshot())
}

func (h *Handler) transferOwnership(w http.ResponseWriter, r *http.Request) {
	from, err := caller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req pkg.AddressRequest
	if err = easyjson.UnmarshalFromReader(r.Body, &req); err != nil {
		h.fail(w, r, errors.Wrap(errBadRequest, err.Error()))
		return
	}

	owner, err := pkg.ParseAddress(req.Address)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = h.admin.TransferOwnership(r.Context(), from, owner); err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.WithFields(logrus.Fields{"from": from.Hex(), "to": owner.Hex()}).Info("ownership transferred")
	h.respond(w, http.StatusOK, h.admin.Snapshot())
}

func (h *Handler) renounceOwnership(w http.ResponseWriter, r *http.Request) {
	from, err := caller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = h.admin.RenounceOwnership(r.Context(), from); err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.WithField("from", from.Hex()).Warn("ownership renounced")
	h.respond(w, http.StatusOK, h.admin.Snapshot())
}

func (h *Handler) grantOperator(w http.ResponseWriter, r *http.Request) {
	h.changeOperator(w, r, h.admin.GrantOperator)
}

func (h *Handler) revokeOperator(w http.ResponseWriter, r *http.Request) {
	h.changeOperator(w, r, h.admin.RevokeOperator)
}

func (h *Handler) changeOperator(w http.ResponseWriter, r *http.Request, change func(context.Context, common.Address, common.Address) error) {
	from, err := caller(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	operator, err := pkg.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = change(r.Context(), from, operator); err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, h.admin.Snapshot())
}
