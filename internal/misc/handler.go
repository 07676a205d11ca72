package misc

import (
	"net/http"

	"github.com/vfit-app/vfit/internal/telemetry/tracing"
	"github.com/vfit-app/vfit/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

type welcomeMessenger interface {
	Message() string
}

type Handler struct {
	welcome     welcomeMessenger
	versionInfo string
}

func NewHandler(welcome welcomeMessenger, versionInfo string) *Handler {
	return &Handler{
		welcome:     welcome,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

// handleRoot serves the welcome message; the fetcher falls back to the
// default greeting until a remote one has been fetched.
func (handler *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.root")
	defer span.End()

	msg := handler.welcome.Message()
	span.SetAttributes(attribute.Int("welcome.length", len(msg)))
	pkg.WriteTextResponseOK(w, msg)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
