package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/zerolog/log"
)

type ErrorResponse = models.ErrorResponse

// HandleError writes the client-safe message for err with the given status.
// The error itself is only logged.
func HandleError(resp *restful.Response, err error, status int) {
	message := models.ClientMessage(err)
	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{Error: message}); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// ServiceErrorHandler writes routing failures with the JSON error envelope.
// A body the route cannot consume is a request the server failed to read,
// so 415 is reported as a generic 500. No route was selected here, so the
// response has no negotiated writer and JSON is encoded directly.
func ServiceErrorHandler(serviceError restful.ServiceError, req *restful.Request, resp *restful.Response) {
	status := serviceError.Code
	message := serviceError.Message

	if status == http.StatusUnsupportedMediaType {
		log.Warn().
			Str("path", req.Request.URL.Path).
			Str("content_type", req.Request.Header.Get("Content-Type")).
			Msg("Unsupported request content type")
		status = http.StatusInternalServerError
		message = models.ClientMessage(serviceError)
	}

	resp.Header().Set("Content-Type", restful.MIME_JSON)
	resp.WriteHeader(status)
	if err := json.NewEncoder(resp).Encode(ErrorResponse{Error: message}); err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}
