package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sanjulagihan/portfolio-backend/auth"
	"github.com/sanjulagihan/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      *auth.Gate
}

func newAuthHandler(gate *auth.Gate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
	}
}

// login exchanges the shared admin password for a session token. The
// token is valid for a fixed window from issue; logout is the client
// discarding it, there is nothing to revoke server-side.
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin password"
// @Success 200 {object} auth.Session "Session token and expiry"
// @Failure 401 {object} ErrorResponse "Wrong password"
// @Router /admin/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		session, err := h.gate.Login(req.Password, time.Now())
		if err != nil {
			// Same response for wrong password and unconfigured gate;
			// details go to the log only.
			h.logger.Warn().Err(err).Msg("admin login rejected")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		h.responder.WriteJSON(w, session)
	}
}
