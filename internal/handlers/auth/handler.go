package auth

import (
	"net/http"

	"condovia/infras/otel"
	"condovia/internal/domains/auth/model/dto"
	"condovia/internal/domains/auth/service"
	"condovia/shared/constant"
	"condovia/shared/failure"
	"condovia/shared/validator"
	"condovia/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/refresh", handler.RefreshToken)
		routerGroup.Post("/change-password", handler.ChangePassword)
	})
}

// Register creates a new resident account.
// @Summary Register a new account
// @Description Register a new resident account with email and password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message "Account created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register account")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Account created successfully")
}

// Login authenticates a user and returns a token pair.
// @Summary Log in
// @Description Authenticate with email and password, returning access and refresh tokens.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Token pair"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log in")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RefreshToken exchanges a refresh token for a new token pair.
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse] "New token pair"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChangePassword changes the authenticated user's password.
// @Summary Change password
// @Description Change the current user's password, verifying the old one first.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Password changed successfully")
}
