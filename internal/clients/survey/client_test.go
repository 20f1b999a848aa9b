package survey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

func testClient(t *testing.T, baseURL string) Client {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	c, err := New(log, Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestFetchQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/account/exit-survey" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"questions": []string{"Why are you leaving?", "What could we improve?"},
		})
	}))
	defer srv.Close()

	got, err := testClient(t, srv.URL).FetchQuestions(context.Background())
	if err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}
	want := []string{"Why are you leaving?", "What could we improve?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FetchQuestions=%v, want %v", got, want)
	}
}

func TestFetchQuestionsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	got, err := testClient(t, srv.URL).FetchQuestions(context.Background())
	if err != nil {
		t.Fatalf("malformed body must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("malformed body must yield zero questions, got %v", got)
	}
}

func TestFetchQuestionsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	got, err := testClient(t, srv.URL).FetchQuestions(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("absent questions must yield zero questions: %v, %v", got, err)
	}
}

func TestFetchQuestionsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := testClient(t, srv.URL).FetchQuestions(context.Background()); err == nil {
		t.Fatalf("expected error on 500")
	}
}

func TestSubmit(t *testing.T) {
	var received Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/account/exit-survey" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode submission: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := testClient(t, srv.URL).Submit(context.Background(), Submission{
		Concern: "busy",
		Answers: []string{"no time", ""},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if received.Concern != "busy" || !reflect.DeepEqual(received.Answers, []string{"no time", ""}) {
		t.Fatalf("server received %+v", received)
	}
}

func TestSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := testClient(t, srv.URL).Submit(context.Background(), Submission{Concern: "other"})
	if err == nil {
		t.Fatalf("expected error on 502")
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if _, err := New(log, Config{}); err == nil {
		t.Fatalf("expected error for missing base URL")
	}
}
