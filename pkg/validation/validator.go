package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxQueryLength = 1024
	MaxHops        = 16
	DefaultHops    = 2
)

func init() {
	validate = validator.New()
}

// QueryRequest represents a request to run the query pipeline.
type QueryRequest struct {
	Query      string `json:"query" validate:"required,max=1024"`
	Hops       int    `json:"hops" validate:"min=0,max=16"`
	GraphPath  string `json:"graphPath" validate:"required"`
	ChunkDir   string `json:"chunkDir" validate:"required"`
	OutputPath string `json:"outputPath" validate:"required"`
}

// ValidateQueryRequest validates a query pipeline request.
func ValidateQueryRequest(req *QueryRequest) error {
	if req == nil {
		return errors.New("query request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	// A query of only whitespace tokenizes to zero terms; reject it up front
	// rather than reporting a misleading no_matches result.
	if strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("Query: must contain at least one non-whitespace character")
	}

	return nil
}

// ValidateGraph performs schema sanity checks beyond structural decoding:
// every node needs a non-empty id and every edge two non-empty endpoints.
// Duplicate ids and dangling edge endpoints are tolerated; lookup maps keep
// the last-seen node and endpoints are carried as opaque tokens.
func ValidateGraph(g *graph.Graph) error {
	if g == nil {
		return errors.New("graph cannot be nil")
	}

	for i, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("Nodes: node at index %d has an empty id", i)
		}
	}
	for i, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("Edges: edge at index %d has an empty endpoint", i)
		}
	}

	return nil
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		switch ve.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s: is required", ve.Field()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s: exceeds maximum of %s", ve.Field(), ve.Param()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s: below minimum of %s", ve.Field(), ve.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s: failed %s validation", ve.Field(), ve.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
