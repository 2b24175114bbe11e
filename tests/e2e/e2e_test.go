package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interviewdesk/internal/database"
	"interviewdesk/internal/domain"
	"interviewdesk/internal/middleware"
	"interviewdesk/internal/modules/auth"
	"interviewdesk/internal/modules/availability"
	"interviewdesk/internal/modules/bookingrequest"
	"interviewdesk/internal/modules/claim"
	"interviewdesk/internal/modules/interviewer"
	"interviewdesk/internal/modules/publiclink"
	jwtsvc "interviewdesk/internal/pkg/jwt"
	"interviewdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate")

	userRepo := repository.NewUserRepository(db)
	interviewerRepo := repository.NewInterviewerRepository(db)
	requestRepo := repository.NewBookingRequestRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	linkRepo := repository.NewPublicLinkRepository(db)
	bookingRepo := repository.NewStudentBookingRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	interviewerHandler := interviewer.NewHandler(interviewer.NewService(interviewerRepo, userRepo))
	availabilityHandler := availability.NewHandler(availability.NewService(requestRepo, availabilityRepo, interviewerRepo))
	requestHandler := bookingrequest.NewHandler(bookingrequest.NewService(requestRepo, availabilityRepo, slotRepo, interviewerRepo, time.Hour))
	linkHandler := publiclink.NewHandler(publiclink.NewService(linkRepo, requestRepo, slotRepo))
	claimHandler := claim.NewHandler(claim.NewService(linkRepo, requestRepo, bookingRepo, nil))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	linkHandler.RegisterPublicRoutes(v1)
	claimHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)

		interviewerGroup := protected.Group("")
		interviewerGroup.Use(middleware.InterviewerOnly())
		availabilityHandler.RegisterInterviewerRoutes(interviewerGroup)

		adminGroup := protected.Group("")
		adminGroup.Use(middleware.AdminOnly())
		{
			interviewerHandler.RegisterAdminRoutes(adminGroup)
			requestHandler.RegisterAdminRoutes(adminGroup)
			availabilityHandler.RegisterAdminRoutes(adminGroup)
			linkHandler.RegisterAdminRoutes(adminGroup)
			claimHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	adminUser := &domain.User{
		Email:        "admin@test.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Admin User",
	}
	require.NoError(t, db.Create(adminUser).Error, "Failed to create admin user")

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()
	var resp TestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	}
	return &resp
}

func (s *E2ETestSuite) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.makeRequest("POST", "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())
	resp := parseResponse(t, w)
	return resp.Data["token"].(string)
}

// Full lifecycle: invite, collect availability, materialize, publish,
// claim, extend the allow-list, conflict on double claim, cancel, reclaim.
func TestFlow_BookingLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	adminToken := suite.login(t, "admin@test.com", "admin123")

	// Admin registers an interviewer.
	w := suite.makeRequest("POST", "/api/v1/interviewers", map[string]interface{}{
		"full_name": "Maya Iskakova",
		"email":     "maya@test.com",
		"password":  "interview123",
		"domains":   []string{"backend"},
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	interviewerID := int64(resp.Data["interviewer"].(map[string]interface{})["id"].(float64))

	// Admin opens a booking request inviting them.
	w = suite.makeRequest("POST", "/api/v1/booking-requests", map[string]interface{}{
		"date":            "2026-09-14",
		"domain_tag":      "backend",
		"interviewer_ids": []int64{interviewerID},
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	request := resp.Data["booking_request"].(map[string]interface{})
	requestID := int64(request["id"].(float64))
	assert.Equal(t, "awaiting_availability", request["status"])

	// The interviewer submits two hours of availability.
	interviewerToken := suite.login(t, "maya@test.com", "interview123")
	w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/booking-requests/%d/availability", requestID), map[string]interface{}{
		"windows": []map[string]string{
			{"date": "2026-09-14", "start": "09:00", "end": "11:00"},
		},
	}, interviewerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Submission advanced the request, so the admin can materialize.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/booking-requests/%d/materialize", requestID), nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	slots := resp.Data["slots"].([]interface{})
	require.Len(t, slots, 2)
	slotA := slots[0].(map[string]interface{})["id"].(string)
	slotB := slots[1].(map[string]interface{})["id"].(string)

	// Publish a link that only alice may use.
	w = suite.makeRequest("POST", "/api/v1/links", map[string]interface{}{
		"booking_request_id": requestID,
		"allow_list":         []string{"alice@students.io"},
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	publicID := resp.Data["link"].(map[string]interface{})["public_id"].(string)

	// Alice sees both slots; bob sees a 403.
	w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/links/%s/slots?identity=alice@students.io", publicID), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	assert.Len(t, resp.Data["slots"], 2)

	w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/links/%s/slots?identity=bob@students.io", publicID), nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "NOT_AUTHORIZED", parseResponse(t, w).Error.Code)

	// Alice claims the first slot.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotA),
		map[string]string{"identity": "alice@students.io"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	aliceBookingID := int64(resp.Data["booking"].(map[string]interface{})["id"].(float64))

	// Bob cannot claim until the admin extends the allow-list.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotB),
		map[string]string{"identity": "bob@students.io"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/allow-list", publicID), map[string]interface{}{
		"identities": []string{"bob@students.io"},
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(2), parseResponse(t, w).Data["allow_list_size"])

	// Bob's claim on alice's slot loses; the other slot works.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotA),
		map[string]string{"identity": "bob@students.io"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SLOT_UNAVAILABLE", parseResponse(t, w).Error.Code)

	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotB),
		map[string]string{"identity": "bob@students.io"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Alice retrying her own slot is a no-op; a second slot is refused.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotA),
		map[string]string{"identity": "alice@students.io"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	assert.Equal(t, float64(aliceBookingID), resp.Data["booking"].(map[string]interface{})["id"])

	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotB),
		map[string]string{"identity": "alice@students.io"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_BOOKED", parseResponse(t, w).Error.Code)

	// Admin cancels alice's booking with release; the slot becomes claimable.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/bookings/%d/cancel", aliceBookingID),
		map[string]interface{}{"release_slot": true}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/links/%s/slots?identity=alice@students.io", publicID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	assert.Len(t, resp.Data["slots"], 1)

	// After alice cancelled she can claim again.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotA),
		map[string]string{"identity": "alice@students.io"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The projection feed shows every booking, cancelled included.
	w = suite.makeRequest("GET", "/api/v1/bookings?since=0&limit=10", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = parseResponse(t, w)
	assert.Len(t, resp.Data["bookings"], 3)
}

// Closing the request freezes claims but keeps reads working.
func TestFlow_CloseFreezesClaims(t *testing.T) {
	suite := setupTestSuite(t)

	adminToken := suite.login(t, "admin@test.com", "admin123")

	w := suite.makeRequest("POST", "/api/v1/interviewers", map[string]interface{}{
		"full_name": "Timur Aliyev",
		"email":     "timur@test.com",
		"password":  "interview123",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	interviewerID := int64(parseResponse(t, w).Data["interviewer"].(map[string]interface{})["id"].(float64))

	w = suite.makeRequest("POST", "/api/v1/booking-requests", map[string]interface{}{
		"date":            "2026-09-21",
		"interviewer_ids": []int64{interviewerID},
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	requestID := int64(parseResponse(t, w).Data["booking_request"].(map[string]interface{})["id"].(float64))

	interviewerToken := suite.login(t, "timur@test.com", "interview123")
	w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/booking-requests/%d/availability", requestID), map[string]interface{}{
		"windows": []map[string]string{{"date": "2026-09-21", "start": "10:00", "end": "11:00"}},
	}, interviewerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/booking-requests/%d/materialize", requestID), nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	slotID := parseResponse(t, w).Data["slots"].([]interface{})[0].(map[string]interface{})["id"].(string)

	w = suite.makeRequest("POST", "/api/v1/links", map[string]interface{}{
		"booking_request_id": requestID,
		"allow_list":         []string{"carol@students.io"},
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	publicID := parseResponse(t, w).Data["link"].(map[string]interface{})["public_id"].(string)

	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/booking-requests/%d/close", requestID), nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Claims now get 410; the listing still answers.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/links/%s/slots/%s/claim", publicID, slotID),
		map[string]string{"identity": "carol@students.io"}, "")
	assert.Equal(t, http.StatusGone, w.Code)
	assert.Equal(t, "LINK_CLOSED", parseResponse(t, w).Error.Code)

	w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/links/%s/slots?identity=carol@students.io", publicID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Closing again is a no-op.
	w = suite.makeRequest("POST", fmt.Sprintf("/api/v1/booking-requests/%d/close", requestID), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
