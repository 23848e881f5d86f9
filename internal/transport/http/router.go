package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/transport/http/handlers"
	pkgjson "github.com/ankitkandwal-git/publication-Research-Journal/pkg/json"
)

type methodNotAllowedResponse struct {
	Error  string `json:"error"`
	Method string `json:"method"`
}

func NewRouter(
	httpHandlers *handlers.HTTPHandlers,
) http.Handler {
	r := chi.NewRouter()

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		pkgjson.Write(w, http.StatusMethodNotAllowed, methodNotAllowedResponse{
			Error:  "Method not allowed",
			Method: req.Method,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", httpHandlers.UploadCertificate)
		r.Get("/certificates", httpHandlers.ListCertificates)
		r.Get("/test", httpHandlers.Health)
	})

	return r
}
