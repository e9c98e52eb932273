package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/chayanin/tcasport/core"
)

var jwtConf middleware.JWTConfig

type Claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
}

// ConfigureAuth sets up JWT authentication and returns the middleware
// guarding the reviewer routes.
func ConfigureAuth(conf *core.Config) echo.MiddlewareFunc {
	jwtConf = middleware.JWTConfig{
		Claims:        &Claims{},
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "reviewerToken",
	}
	return middleware.JWTWithConfig(jwtConf)
}

// GetReviewerClaims retrieves the authenticated reviewer's Claims from context.
func GetReviewerClaims(ctx echo.Context) *Claims {
	if token, ok := ctx.Get(jwtConf.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return claims
		}
	}
	return nil
}

// GenerateToken generates a new signed token carrying the reviewer's email.
func GenerateToken(email string, conf *core.Config) (string, error) {
	now := time.Now()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(conf.JWTExpirationDelta).Unix(),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}

type authApi struct {
	conf     *core.Config
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, conf *core.Config, validate *validator.Validate) {
	api := authApi{conf: conf, validate: validate}

	g.POST("/login", api.login)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true)
	return validate.Struct(lr)
}

func (api *authApi) login(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	// TODO: verify credentials against a real account store
	select {
	case <-time.After(api.conf.LoginDelay):
	case <-ctx.Request().Context().Done():
		return ctx.Request().Context().Err()
	}

	token, err := GenerateToken(data.Email, api.conf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"token": token})
}
