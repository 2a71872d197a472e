package api

import (
	"github.com/drishti-labs/drishti/internal/config"
	"github.com/drishti-labs/drishti/pkg/openapi"
)

// buildSpec generates the OpenAPI document for the API module. Report and
// storage paths are included only when the service runs with persistence.
func buildSpec(cfg *config.Config, persistent bool) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(schemas())
	addAuthPaths(spec)
	addAnalysisPaths(spec)
	addAuditPaths(spec)

	if persistent {
		addReportPaths(spec)
	}

	return openapi.MarshalJSON(spec)
}

func schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"LoginRequest": {
			Type:     "object",
			Required: []string{"username", "password"},
			Properties: map[string]*openapi.Schema{
				"username": {Type: "string"},
				"password": {Type: "string"},
			},
		},
		"LoginResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "boolean"},
				"user":    openapi.SchemaRef("Account"),
				"token":   {Type: "string", Format: "uuid", Description: "Bearer session token"},
			},
		},
		"Account": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":       {Type: "string", Format: "uuid"},
				"username": {Type: "string"},
			},
		},
		"AuditEntry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Format: "uuid"},
				"timestamp": {Type: "string", Format: "date-time"},
				"action":    {Type: "string", Example: "Approved for Committee Review"},
				"user":      {Type: "string"},
				"comments":  {Type: "string", Description: "Absent when the submitter provided no comments"},
			},
		},
		"DecisionSubmission": {
			Type:     "object",
			Required: []string{"action"},
			Properties: map[string]*openapi.Schema{
				"action":   {Type: "string", Enum: []any{"approve", "flag", "reject"}},
				"comments": {Type: "string"},
			},
		},
		"DecisionResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "boolean"},
				"entry":   openapi.SchemaRef("AuditEntry"),
			},
		},
		"Analysis": {
			Type:        "object",
			Description: "Complete analysis result for the active document, including the full audit trail",
			Properties: map[string]*openapi.Schema{
				"fileName":       {Type: "string"},
				"dprHealthScore": {Type: "integer"},
				"summary":        {Type: "object"},
				"completeness":   {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"riskPrediction": {Type: "object"},
				"inconsistencies": {
					Type:  "array",
					Items: &openapi.Schema{Type: "object"},
				},
				"extractedEntities": {
					Type:  "array",
					Items: &openapi.Schema{Type: "object"},
				},
				"benchmarks":  {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"riskFactors": {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"location":    {Type: "object"},
				"auditLog": {
					Type:  "array",
					Items: openapi.SchemaRef("AuditEntry"),
				},
			},
		},
		"AnalysisSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"fileName":         {Type: "string"},
				"dprHealthScore":   {Type: "integer"},
				"itemsFound":       {Type: "integer"},
				"itemsMissing":     {Type: "integer"},
				"checksMatched":    {Type: "integer"},
				"checksMismatched": {Type: "integer"},
				"highImpactRisks":  {Type: "integer"},
				"decisions":        {Type: "integer"},
			},
		},
		"Report": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"filename":     {Type: "string"},
				"content_type": {Type: "string"},
				"size_bytes":   {Type: "integer"},
				"page_count":   {Type: "integer"},
				"storage_key":  {Type: "string"},
				"status":       {Type: "string", Enum: []any{"uploaded", "analyzed"}},
				"uploaded_at":  {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time"},
			},
		},
		"BatchResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"filename": {Type: "string"},
				"report":   openapi.SchemaRef("Report"),
				"error":    {Type: "string"},
			},
		},
	}
}

func addAuthPaths(spec *openapi.Spec) {
	spec.Paths["/auth/login"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Authenticate a reviewer",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("LoginRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Session issued", "LoginResponse"),
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
			},
		},
	}

	spec.Paths["/auth/register"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Register a reviewer account",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("LoginRequest", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Account created", "Account"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}
}

func addAnalysisPaths(spec *openapi.Spec) {
	spec.Paths["/dpr/analysis"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Get the active analysis",
			Tags:    []string{"analysis"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Active analysis with audit trail", "Analysis"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/dpr/summary"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Get condensed analysis metrics",
			Tags:    []string{"analysis"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Dashboard summary", "AnalysisSummary"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/dpr/action"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Submit a review decision",
			Description: "Appends the decision to the audit trail. Submissions are not idempotent.",
			Tags:        []string{"decisions"},
			RequestBody: openapi.RequestBodyJSON("DecisionSubmission", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Decision recorded", "DecisionResponse"),
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
			},
		},
	}
}

func addAuditPaths(spec *openapi.Spec) {
	spec.Paths["/audit"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List audit entries",
			Tags:    []string{"audit"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("action", "string", "Exact action label", false),
				openapi.QueryParam("user", "string", "Exact acting user", false),
				openapi.QueryParam("search", "string", "Search across action, user, and comments", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of audit entries in commit order", "AuditEntry"),
			},
		},
	}

	spec.Paths["/audit/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get an audit entry",
			Tags:       []string{"audit"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Audit entry id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Audit entry", "AuditEntry"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addReportPaths(spec *openapi.Spec) {
	spec.Paths["/reports"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List reports",
			Tags:    []string{"reports"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("status", "string", "Exact report status", false),
				openapi.QueryParam("filename", "string", "Filename contains", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of reports", "Report"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Upload a PDF report",
			Description: "Multipart form with field \"file\". The upload is validated as a PDF and handed to the analysis pipeline.",
			Tags:        []string{"reports"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Report stored", "Report"),
				400: openapi.ResponseRef("BadRequest"),
				413: {Description: "File exceeds the upload size limit"},
			},
		},
	}

	spec.Paths["/reports/batch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Upload several PDF reports",
			Description: "Multipart form with repeated field \"files\". Outcomes are reported per file.",
			Tags:        []string{"reports"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Per-file outcomes", "BatchResult"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/reports/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get a report",
			Tags:       []string{"reports"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Report id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Report", "Report"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a report",
			Tags:       []string{"reports"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Report id")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Report deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/reports/{id}/content"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Download the stored file",
			Tags:       []string{"reports"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Report id")},
			Responses: map[int]*openapi.Response{
				200: {Description: "File stream"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}
