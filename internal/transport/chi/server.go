package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
	logpkg "github.com/kailas-cloud/machine-advisor/internal/logger"
	healthuc "github.com/kailas-cloud/machine-advisor/internal/usecase/health"
)

const (
	suggestErrorPrefix  = "Error processing automation suggestion: "
	defaultMaxUploadMiB = 25
)

// Suggester answers problem descriptions.
type Suggester interface {
	Suggest(ctx context.Context, problem string) (domain.Suggestion, error)
}

// Transcriber converts audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server holds the HTTP handlers of the advisor API.
type Server struct {
	suggest        Suggester
	transcribe     Transcriber
	health         HealthChecker
	maxUploadBytes int64
}

// NewServer creates an HTTP API server. maxUploadBytes <= 0 uses 25 MiB.
func NewServer(
	suggest Suggester,
	transcribe Transcriber,
	health HealthChecker,
	maxUploadBytes int64,
) *Server {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadMiB << 20
	}
	return &Server{
		suggest:        suggest,
		transcribe:     transcribe,
		health:         health,
		maxUploadBytes: maxUploadBytes,
	}
}

type suggestRequest struct {
	Problem string `json:"problem"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "MSME Automation Helper API is running"})
}

// Test handles GET /test.
func (s *Server) Test(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Backend is working correctly"})
}

// TestAutomation handles POST /test-automation with a fixed suggestion for frontend wiring checks.
func (s *Server) TestAutomation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestion": "Test suggestion: Semi-automatic powder packing machine\n" +
			"Estimated Cost: ₹28000\nROI: 2 months\nManpower Savings: Replaces 2 workers\n" +
			"Vendors: Test Vendor (Coimbatore)",
		"machine_name":     "Semi-automatic powder packing machine",
		"machine_cost":     28000,
		"roi_months":       2,
		"manpower_savings": "Replaces 2 workers",
		"vendors":          []map[string]string{{"vendor_name": "Test Vendor", "location": "Coimbatore"}},
	})
}

// Suggest handles POST /api/automation-suggest.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.suggest.Suggest(r.Context(), req.Problem)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, "problem is required")
			return
		}
		logpkg.FromContext(r.Context()).Error("automation suggestion failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, suggestErrorPrefix+err.Error())
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		logpkg.FromContext(r.Context()).Error("encode suggestion", zap.Error(err))
		writeError(w, http.StatusInternalServerError, suggestErrorPrefix+err.Error())
		return
	}
	writeBody(w, http.StatusOK, body)
}

// Transcribe handles POST /api/transcribe with a multipart "file" part.
func (s *Server) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	text, err := s.transcribe.Transcribe(r.Context(), file)
	if err != nil {
		logpkg.FromContext(r.Context()).Error("transcription failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, transcriptionMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{Text: text})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// writeJSON encodes v before committing the status so an unencodable value
// becomes a 500 with a detail instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Detail: "failed to encode response: " + err.Error()})
	}
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

var transcriptionMessages = []struct {
	sentinel error
	message  string
}{
	{domain.ErrTranscriptionNotConfigured, "AssemblyAI API key not set."},
	{domain.ErrTranscriptionUpload, "Failed to upload audio to AssemblyAI."},
	{domain.ErrTranscriptionStart, "Failed to start transcription."},
	{domain.ErrTranscriptionPoll, "Failed to poll transcription."},
	{domain.ErrTranscriptionFailed, "Transcription failed."},
	{domain.ErrTranscriptionTimeout, "Transcription timed out."},
}

func transcriptionMessage(err error) string {
	for _, m := range transcriptionMessages {
		if errors.Is(err, m.sentinel) {
			return m.message
		}
	}
	return "Transcription failed."
}
