package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	authdomain "github.com/gulfbridge/portal/internal/auth/domain"
	"github.com/gulfbridge/portal/internal/auth/session"
	"github.com/gulfbridge/portal/internal/config"
	contentdomain "github.com/gulfbridge/portal/internal/content/domain"
	messagedomain "github.com/gulfbridge/portal/internal/message/domain"
	"github.com/gulfbridge/portal/internal/providers/storage"
	quotedomain "github.com/gulfbridge/portal/internal/quote/domain"
	shipmentdomain "github.com/gulfbridge/portal/internal/shipment/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSessionToken = "test-session-token"

type authServiceStub struct {
	admin *admindomain.Admin
}

func (s *authServiceStub) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	if req.Password != "correct" {
		return nil, authdomain.ErrInvalidCredentials
	}
	return &authdomain.LoginResult{
		Admin:     *s.admin,
		RawToken:  testSessionToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *authServiceStub) Logout(ctx context.Context, rawToken string) error { return nil }

func (s *authServiceStub) Authenticate(ctx context.Context, rawToken string) (*admindomain.Admin, error) {
	if rawToken != testSessionToken || s.admin == nil {
		return nil, authdomain.ErrInvalidSession
	}
	return s.admin, nil
}

type contentServiceStub struct {
	contentdomain.Service

	createFn func(ctx context.Context, col contentdomain.Collection, req contentdomain.UpsertRequest) (*contentdomain.Record, error)
	getFn    func(ctx context.Context, col contentdomain.Collection, id string) (*contentdomain.Record, error)
}

func (s *contentServiceStub) Create(ctx context.Context, col contentdomain.Collection, req contentdomain.UpsertRequest) (*contentdomain.Record, error) {
	return s.createFn(ctx, col, req)
}

func (s *contentServiceStub) GetByID(ctx context.Context, col contentdomain.Collection, id string) (*contentdomain.Record, error) {
	return s.getFn(ctx, col, id)
}

type messageServiceStub struct {
	messagedomain.Service

	submitFn   func(ctx context.Context, req messagedomain.SubmitRequest) (*messagedomain.Message, error)
	markReadFn func(ctx context.Context, id string) (*messagedomain.Message, error)
}

func (s *messageServiceStub) Submit(ctx context.Context, req messagedomain.SubmitRequest) (*messagedomain.Message, error) {
	return s.submitFn(ctx, req)
}

func (s *messageServiceStub) MarkRead(ctx context.Context, id string) (*messagedomain.Message, error) {
	return s.markReadFn(ctx, id)
}

type quoteServiceStub struct {
	quotedomain.Service

	submitFn func(ctx context.Context, req quotedomain.SubmitRequest) (*quotedomain.Quote, error)
	getFn    func(ctx context.Context, id string) (*quotedomain.Quote, error)
}

func (s *quoteServiceStub) Submit(ctx context.Context, req quotedomain.SubmitRequest) (*quotedomain.Quote, error) {
	return s.submitFn(ctx, req)
}

func (s *quoteServiceStub) GetByID(ctx context.Context, id string) (*quotedomain.Quote, error) {
	return s.getFn(ctx, id)
}

type shipmentServiceStub struct {
	shipmentdomain.Service

	trackFn  func(ctx context.Context, trackingID string) (*shipmentdomain.Shipment, error)
	upsertFn func(ctx context.Context, trackingID string, req shipmentdomain.UpsertRequest) (*shipmentdomain.Shipment, error)
}

func (s *shipmentServiceStub) Track(ctx context.Context, trackingID string) (*shipmentdomain.Shipment, error) {
	return s.trackFn(ctx, trackingID)
}

func (s *shipmentServiceStub) Upsert(ctx context.Context, trackingID string, req shipmentdomain.UpsertRequest) (*shipmentdomain.Shipment, error) {
	return s.upsertFn(ctx, trackingID, req)
}

type pdfProviderStub struct {
	content  []byte
	lastLang string
}

func (s *pdfProviderStub) GenerateQuotation(ctx context.Context, quote *quotedomain.Quote, lang string) (io.Reader, string, error) {
	s.lastLang = lang
	return bytes.NewReader(s.content), "01TESTDOC", nil
}

type uploaderStub struct {
	lastPreset storage.Preset
	lastFile   storage.File
}

func (s *uploaderStub) Upload(ctx context.Context, preset storage.Preset, file storage.File) (string, error) {
	s.lastPreset = preset
	s.lastFile = file
	return "https://cdn.gulfbridge.example/" + file.Name, nil
}

func (s *uploaderStub) UploadMany(ctx context.Context, preset storage.Preset, files []storage.File) ([]string, error) {
	urls := make([]string, len(files))
	for i, file := range files {
		urls[i], _ = s.Upload(ctx, preset, file)
	}
	return urls, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		engine:   NewEngine(zap.NewNop(), nil),
		cfg:      config.Config{},
		sessions: session.NewManager(config.Config{}),
		authsvc:  &authServiceStub{},
	}
	return s
}

func register(s *Server) {
	s.registerAuthRoutes()
	s.registerPublicRoutes()
	s.registerAdminRoutes()
}

func doJSON(s *Server, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: testSessionToken})
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func adminWith(perms admindomain.PermissionMap) *admindomain.Admin {
	return &admindomain.Admin{
		ID:          snowflake.ID(101),
		Email:       "ops@gulfbridge.example",
		Role:        admindomain.RoleAdmin,
		Permissions: admindomain.MergePermissions(perms, admindomain.DefaultPermissions(admindomain.RoleAdmin)),
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(nil)}
	register(s)

	w := doJSON(s, http.MethodPost, "/auth/login", gin.H{"email": "ops@gulfbridge.example", "password": "correct"}, false)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, session.DefaultCookieName, cookies[0].Name)
	assert.Equal(t, testSessionToken, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(nil)}
	register(s)

	w := doJSON(s, http.MethodPost, "/auth/login", gin.H{"email": "ops@gulfbridge.example", "password": "wrong"}, false)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"unauthorized"`)
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)
	register(s)

	w := doJSON(s, http.MethodGet, "/admin/messages", nil, false)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitContactMessage(t *testing.T) {
	s := newTestServer(t)
	var captured messagedomain.SubmitRequest
	s.messageSvc = &messageServiceStub{
		submitFn: func(ctx context.Context, req messagedomain.SubmitRequest) (*messagedomain.Message, error) {
			captured = req
			return &messagedomain.Message{
				ID:     snowflake.ID(7),
				Name:   req.Name,
				Email:  req.Email,
				Body:   req.Message,
				Status: messagedomain.StatusUnread,
			}, nil
		},
	}
	register(s)

	w := doJSON(s, http.MethodPost, "/api/contact", gin.H{
		"name":    "Huda",
		"email":   "huda@example.com",
		"message": "Do you ship to Salmiya?",
	}, false)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Huda", captured.Name)
	assert.Contains(t, w.Body.String(), `"status":"unread"`)
}

func TestSubmitContactMessageValidation(t *testing.T) {
	s := newTestServer(t)
	s.messageSvc = &messageServiceStub{
		submitFn: func(ctx context.Context, req messagedomain.SubmitRequest) (*messagedomain.Message, error) {
			return nil, messagedomain.ErrInvalidEmail
		},
	}
	register(s)

	w := doJSON(s, http.MethodPost, "/api/contact", gin.H{"name": "Huda"}, false)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"validation_error"`)
	assert.Contains(t, w.Body.String(), "email_required")
}

func TestMarkMessageReadIsIdempotent(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(admindomain.PermissionMap{
		"messages": {"markRead": true},
	})}
	calls := 0
	s.messageSvc = &messageServiceStub{
		markReadFn: func(ctx context.Context, id string) (*messagedomain.Message, error) {
			calls++
			return &messagedomain.Message{ID: snowflake.ID(7), Status: messagedomain.StatusRead}, nil
		},
	}
	register(s)

	first := doJSON(s, http.MethodPost, "/admin/messages/7/read", nil, true)
	second := doJSON(s, http.MethodPost, "/admin/messages/7/read", nil, true)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 2, calls)
	assert.Contains(t, second.Body.String(), `"status":"read"`)
}

func TestSubmitQuote(t *testing.T) {
	s := newTestServer(t)
	s.quoteSvc = &quoteServiceStub{
		submitFn: func(ctx context.Context, req quotedomain.SubmitRequest) (*quotedomain.Quote, error) {
			if len(req.Items) == 0 {
				return nil, quotedomain.ErrNoItems
			}
			return &quotedomain.Quote{
				ID:       snowflake.ID(42),
				Items:    req.Items,
				Status:   quotedomain.StatusPending,
				Year:     2026,
				Sequence: 1,
			}, nil
		},
	}
	register(s)

	w := doJSON(s, http.MethodPost, "/api/quotes", gin.H{
		"name":  "Gulf Trading Co",
		"email": "ops@gulftrading.example",
		"phone": "+96550000000",
		"items": []gin.H{{"serviceName": "Sea freight", "quantity": "3"}},
	}, false)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"reference":"Q-2026-0001"`)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestSubmitQuoteWithoutItemsRejected(t *testing.T) {
	s := newTestServer(t)
	s.quoteSvc = &quoteServiceStub{
		submitFn: func(ctx context.Context, req quotedomain.SubmitRequest) (*quotedomain.Quote, error) {
			return nil, quotedomain.ErrNoItems
		},
	}
	register(s)

	w := doJSON(s, http.MethodPost, "/api/quotes", gin.H{
		"name":  "Gulf Trading Co",
		"email": "ops@gulftrading.example",
		"phone": "+96550000000",
		"items": []gin.H{},
	}, false)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at_least_one_item_required")
}

func TestQuotePDFDownload(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(nil)}
	s.quoteSvc = &quoteServiceStub{
		getFn: func(ctx context.Context, id string) (*quotedomain.Quote, error) {
			return &quotedomain.Quote{ID: snowflake.ID(9), Year: 2026, Sequence: 7}, nil
		},
	}
	s.pdfProvider = &pdfProviderStub{content: []byte("%PDF-1.7 test")}
	register(s)

	w := doJSON(s, http.MethodGet, "/admin/quotes/9/pdf", nil, true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `Quotation-Q-2026-0007.pdf`)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestQuotePDFLanguageReachesProvider(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(nil)}
	s.quoteSvc = &quoteServiceStub{
		getFn: func(ctx context.Context, id string) (*quotedomain.Quote, error) {
			return &quotedomain.Quote{ID: snowflake.ID(9), Year: 2026, Sequence: 7}, nil
		},
	}
	pdf := &pdfProviderStub{content: []byte("%PDF-1.7 test")}
	s.pdfProvider = pdf
	register(s)

	w := doJSON(s, http.MethodGet, "/admin/quotes/9/pdf?lang=ar", nil, true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ar", pdf.lastLang)
}

func TestUpsertShipmentAllowedWithAddOnly(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(admindomain.PermissionMap{
		"shipments": {"add": true},
	})}
	s.shipmentSvc = &shipmentServiceStub{
		upsertFn: func(ctx context.Context, trackingID string, req shipmentdomain.UpsertRequest) (*shipmentdomain.Shipment, error) {
			return &shipmentdomain.Shipment{TrackingID: trackingID, Status: req.Status}, nil
		},
	}
	register(s)

	w := doJSON(s, http.MethodPut, "/admin/shipments/GB-1001", gin.H{"status": "in_transit"}, true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"trackingId":"GB-1001"`)
}

func TestUpsertShipmentForbiddenWithViewOnly(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(admindomain.PermissionMap{
		"shipments": {"view": true},
	})}
	register(s)

	w := doJSON(s, http.MethodPut, "/admin/shipments/GB-1001", gin.H{"status": "in_transit"}, true)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"forbidden"`)
}

func TestApplicantCVUpload(t *testing.T) {
	s := newTestServer(t)
	uploader := &uploaderStub{}
	s.uploader = uploader
	register(s)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7 cv"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/cv", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, storage.PresetCV, uploader.lastPreset)
	assert.Equal(t, "cv.pdf", uploader.lastFile.Name)
	assert.Contains(t, w.Body.String(), `"url":"https://cdn.gulfbridge.example/cv.pdf"`)
}

func TestCreateProductForbiddenWithoutPermission(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(admindomain.PermissionMap{
		"products": {"view": true},
	})}
	register(s)

	w := doJSON(s, http.MethodPost, "/admin/products", gin.H{"title": gin.H{"en": "Pallet jack"}}, true)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"forbidden"`)
}

func TestCreateProductArabicOnly(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(admindomain.PermissionMap{
		"products": {"add": true},
	})}
	s.contentSvc = &contentServiceStub{
		createFn: func(ctx context.Context, col contentdomain.Collection, req contentdomain.UpsertRequest) (*contentdomain.Record, error) {
			require.Equal(t, contentdomain.CollectionProducts, col)
			return &contentdomain.Record{
				ID:        snowflake.ID(5),
				Title:     req.Title,
				ImageURLs: []string{},
				VideoURLs: []string{},
			}, nil
		},
	}
	register(s)

	w := doJSON(s, http.MethodPost, "/admin/products", gin.H{
		"title": gin.H{"ar": "رافعة شوكية"},
	}, true)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"imageUrls":[]`)
	assert.Contains(t, w.Body.String(), "رافعة شوكية")
}

func TestTrackShipmentNotFound(t *testing.T) {
	s := newTestServer(t)
	s.shipmentSvc = &shipmentServiceStub{
		trackFn: func(ctx context.Context, trackingID string) (*shipmentdomain.Shipment, error) {
			return nil, shipmentdomain.ErrNotFound
		},
	}
	register(s)

	w := doJSON(s, http.MethodGet, "/api/track/GB-404", nil, false)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"not_found"`)
}

func TestCalculateCBM(t *testing.T) {
	s := newTestServer(t)
	register(s)

	w := doJSON(s, http.MethodPost, "/api/cbm", gin.H{
		"length":   "100",
		"width":    "50",
		"height":   "60",
		"quantity": "2",
	}, false)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"volume":"0.600"`)
	assert.Contains(t, w.Body.String(), `"volumetricWeight":"100.00"`)
}

func TestCalculateCBMRejectsNonNumeric(t *testing.T) {
	s := newTestServer(t)
	register(s)

	w := doJSON(s, http.MethodPost, "/api/cbm", gin.H{
		"length":   "abc",
		"width":    "50",
		"height":   "60",
		"quantity": "1",
	}, false)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "all_dimensions_must_be_numeric")
}

func TestMeReturnsMergedPermissions(t *testing.T) {
	s := newTestServer(t)
	s.authsvc = &authServiceStub{admin: adminWith(admindomain.PermissionMap{
		"shipments": {"edit": true},
	})}
	register(s)

	w := doJSON(s, http.MethodGet, "/auth/me", nil, true)

	require.Equal(t, http.StatusOK, w.Code)

	var adm admindomain.Admin
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adm))
	assert.True(t, adm.Permissions.Can("shipments", "edit"))
	assert.False(t, adm.Permissions.Can("shipments", "delete"))
}
