package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/habitloop-backend/internal/modules/retention"
	"github.com/habitloop/habitloop-backend/internal/services"
)

type stubRetentionService struct {
	session     retention.Session
	lastConcern string
	lastIndex   int
	lastText    string
	confirmed   bool
}

func (s *stubRetentionService) Open(ctx context.Context) (retention.Session, error) {
	s.session = retention.NewSession()
	s.session.Active = true
	return s.session, nil
}

func (s *stubRetentionService) Session(ctx context.Context) (retention.Session, error) {
	return s.session, nil
}

func (s *stubRetentionService) SelectConcern(ctx context.Context, concern string) (retention.Session, error) {
	s.lastConcern = concern
	s.session.SelectedConcern = retention.Concern(concern)
	return s.session, nil
}

func (s *stubRetentionService) Continue(ctx context.Context) (retention.Session, error) {
	return s.session, nil
}

func (s *stubRetentionService) SetAnswer(ctx context.Context, index int, text string) (retention.Session, error) {
	s.lastIndex = index
	s.lastText = text
	return s.session, nil
}

func (s *stubRetentionService) StillWantToLeave(ctx context.Context) (retention.Session, error) {
	return s.session, nil
}

func (s *stubRetentionService) Resume(ctx context.Context) (retention.Session, error) {
	s.session = retention.NewSession()
	return s.session, nil
}

func (s *stubRetentionService) KeepAccount(ctx context.Context) (retention.Session, error) {
	s.session = retention.NewSession()
	return s.session, nil
}

func (s *stubRetentionService) Close(ctx context.Context) (retention.Session, error) {
	s.session = retention.NewSession()
	return s.session, nil
}

func (s *stubRetentionService) ConfirmDelete(ctx context.Context) (retention.Session, error) {
	s.confirmed = true
	s.session = retention.NewSession()
	return s.session, nil
}

func (s *stubRetentionService) Science(ctx context.Context) (*services.ScienceContent, error) {
	return &services.ScienceContent{Statements: retention.ScienceStatements()}, nil
}

func retentionRouter(svc services.RetentionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewRetentionHandler(svc)
	router.POST("/account/delete-intent", handler.Open)
	router.GET("/retention/session", handler.Session)
	router.GET("/retention/science", handler.Science)
	router.POST("/retention/concern", handler.SelectConcern)
	router.POST("/retention/answers", handler.SetAnswer)
	router.POST("/retention/confirm-delete", handler.ConfirmDelete)
	return router
}

func TestRetentionOpenEndpoint(t *testing.T) {
	svc := &stubRetentionService{}
	router := retentionRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/delete-intent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Session retention.Session `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Session.Active || body.Session.Step != retention.StepConcern {
		t.Fatalf("unexpected session: %+v", body.Session)
	}
}

func TestRetentionConcernEndpoint(t *testing.T) {
	svc := &stubRetentionService{}
	router := retentionRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/retention/concern", strings.NewReader(`{"concern":"busy"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if svc.lastConcern != "busy" {
		t.Fatalf("concern not passed through, got %q", svc.lastConcern)
	}
}

func TestRetentionConcernEndpointBadBody(t *testing.T) {
	svc := &stubRetentionService{}
	router := retentionRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/retention/concern", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "invalid_request" {
		t.Fatalf("error code = %q, want invalid_request", body.Error.Code)
	}
}

func TestRetentionAnswerEndpoint(t *testing.T) {
	svc := &stubRetentionService{}
	router := retentionRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/retention/answers", strings.NewReader(`{"index":1,"text":"too busy"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastIndex != 1 || svc.lastText != "too busy" {
		t.Fatalf("answer not passed through: index=%d text=%q", svc.lastIndex, svc.lastText)
	}
}

func TestRetentionConfirmDeleteEndpoint(t *testing.T) {
	svc := &stubRetentionService{}
	router := retentionRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/retention/confirm-delete", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !svc.confirmed {
		t.Fatal("ConfirmDelete never reached the service")
	}
	var body struct {
		Deleted bool              `json:"deleted"`
		Session retention.Session `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Deleted || body.Session.Active {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestRetentionScienceEndpoint(t *testing.T) {
	svc := &stubRetentionService{}
	router := retentionRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/retention/science", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body services.ScienceContent
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Statements) == 0 {
		t.Fatal("expected science statements")
	}
}
