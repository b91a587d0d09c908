package http

import (
	_ "embed"
	"errors"
	"net/http"
	"strings"

	"backoffice/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPISpec []byte

// OpenAPI holds the parsed API description. It serves the document and
// validates incoming requests against it.
type OpenAPI struct {
	doc    *openapi3.T
	router routers.Router
	raw    []byte
}

// LoadOpenAPI parses and validates the embedded document.
func LoadOpenAPI() (*OpenAPI, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return &OpenAPI{doc: doc, router: router, raw: raw}, nil
}

// ValidateRequests rejects requests whose parameters or body do not match
// the document with a BadRequest error. Authentication is left to
// Authenticate. Requests for undocumented routes pass through untouched.
func (o *OpenAPI) ValidateRequests() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := o.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			})
			if err != nil {
				return requestValidationError(err)
			}
			return next(c)
		}
	}
}

func requestValidationError(err error) error {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return errs.NewBadRequestError("request does not match the API description").WithCause(err)
	}

	details := map[string]any{}
	message := "invalid request body"
	if reqErr.Parameter != nil {
		details["parameter"] = reqErr.Parameter.Name
		message = "invalid value for parameter " + reqErr.Parameter.Name
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			details["field"] = strings.Join(pointer, ".")
		}
		details["reason"] = schemaErr.Reason
	}

	return errs.NewBadRequestError(message).WithDetails(details).WithCause(err)
}

// OpenAPIDocument handles GET /openapi.json.
func (s *Server) OpenAPIDocument(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, s.openAPI.raw)
}
