package api

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/resume-ranker/internal/models"
	"github.com/rs/cors"
)

const OpenAPIPath = "/apidocs.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/analyze").
			To(handler.Analyze).
			Doc("Rank resumes against a job description").
			Metadata(restfulspec.KeyOpenAPITags, []string{"analyze"}).
			Reads(models.AnalysisRequest{}).
			Writes(models.AnalysisResult{}).
			Returns(200, "OK", models.AnalysisResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

// RegisterOpenAPI serves the OpenAPI document for every web service registered so far.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Resume Ranker API",
			Description: "Keyword overlap ranking of resumes against a job description",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "analyze", Description: "Resume ranking"}},
	}
}

// NewContainer builds the REST container with filters, routes and OpenAPI docs.
func NewContainer(handler *Handler) *restful.Container {
	container := restful.NewContainer()
	container.ServiceErrorHandler(middleware.ServiceErrorHandler)
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	RegisterRoutes(container, handler)
	RegisterOpenAPI(container)
	return container
}

// WithCORS lets browser front ends on allowedOrigins call the API.
func WithCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return corsHandler.Handler(handler)
}
