package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctor-profile-service/config"
	"doctor-profile-service/internal/delivery/dto"
	deliveryHttp "doctor-profile-service/internal/delivery/http"
	"doctor-profile-service/internal/delivery/http/handler"
	"doctor-profile-service/internal/delivery/http/middleware"
	"doctor-profile-service/internal/infrastructure/metrics"
	"doctor-profile-service/internal/usecase"
	"doctor-profile-service/pkg/jwt"
	"doctor-profile-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubDoctorUsecase only answers the calls the routing tests make
type stubDoctorUsecase struct {
	usecase.DoctorProfileUsecase
	testifymock.Mock
}

func (s *stubDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	args := s.Called(ctx, req)
	doctor, _ := args.Get(0).(*dto.DoctorResponse)
	return doctor, args.Error(1)
}

func newTestServer(t *testing.T, uc usecase.DoctorProfileUsecase) (http.Handler, *jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
	doctorHandler := handler.NewDoctorHandler(uc, validator.NewValidator(), 10)
	auditLogHandler := handler.NewAuditLogHandler(nil, validator.NewValidator())

	router := deliveryHttp.NewRouter(
		doctorHandler,
		auditLogHandler,
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewCORSMiddleware("https://clinic.example"),
		metrics.New().Handler(),
	)
	return router.Setup(), jwtService
}

func TestRouter_AdminDoctorRoutes(t *testing.T) {
	payload := `{"name":"Dr. John","speciality":"DOKTER_UMUM"}`

	newRequest := func(token string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/doctor", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return req
	}

	t.Run("requires a token", func(t *testing.T) {
		server, _ := newTestServer(t, new(stubDoctorUsecase))
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects a forged token", func(t *testing.T) {
		server, _ := newTestServer(t, new(stubDoctorUsecase))
		other := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})
		token, err := other.GenerateAccessToken("admin-1", "admin@clinic.example", middleware.RoleAdmin)
		require.NoError(t, err)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, newRequest(token))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("forbids non admin roles", func(t *testing.T) {
		server, jwtService := newTestServer(t, new(stubDoctorUsecase))
		token, err := jwtService.GenerateAccessToken("doctor-1", "doctor@clinic.example", middleware.RoleDoctor)
		require.NoError(t, err)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, newRequest(token))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin reaches the handler with actor in context", func(t *testing.T) {
		uc := new(stubDoctorUsecase)
		uc.On("CreateDoctor", testifymock.MatchedBy(func(ctx context.Context) bool {
			actorID, ok := middleware.GetActorIDFromContext(ctx)
			return ok && actorID == "admin-1"
		}), testifymock.Anything).Return(&dto.DoctorResponse{ID: uuid.New(), Name: "Dr. John"}, nil)
		server, jwtService := newTestServer(t, uc)
		token, err := jwtService.GenerateAccessToken("admin-1", "admin@clinic.example", middleware.RoleAdmin)
		require.NoError(t, err)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, newRequest(token))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "https://clinic.example", rr.Header().Get("Access-Control-Allow-Origin"))
		uc.AssertExpectations(t)
	})
}

func TestRouter_Health(t *testing.T) {
	server, _ := newTestServer(t, new(stubDoctorUsecase))
	rr := httptest.NewRecorder()

	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	server, _ := newTestServer(t, new(stubDoctorUsecase))
	rr := httptest.NewRecorder()

	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
