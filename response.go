package fieldcheck

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// JSONResponse is the envelope of every JSON answer.
type JSONResponse struct {
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Error   *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failure. Details maps field ids to messages.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON answers 200 with data.
func JSON(code string, data any, meta map[string]any) Response {
	return jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Code: code, Data: data, Meta: meta},
	}
}

// JSONError maps err onto a status code and error envelope. HTTPError keeps
// its code; ValidationErrors answer 422 with per-field details; a failing
// spec answers 500; anything else is an internal error.
func JSONError(err error) Response {
	return errorResponse(err)
}

func errorResponse(err error) jsonResponse {
	status := ErrInternalServerError.Code
	detail := &ErrorDetail{Code: ErrInternalServerError.Key, Message: err.Error()}

	var (
		httpErr HTTPError
		specErr *validator.SpecError
	)
	switch {
	case errors.As(err, &specErr):
		status = ErrSpecFailed.Code
		detail.Code = ErrSpecFailed.Key
	case errors.As(err, &httpErr):
		status = httpErr.Code
		detail.Code = httpErr.Key
	}

	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		status = ErrUnprocessableEntity.Code
		detail.Code = ErrUnprocessableEntity.Key
		detail.Message = "one or more fields are invalid"
		detail.Details = make(map[string][]string, len(verrs))
		for _, ve := range verrs {
			detail.Details[ve.Field] = append(detail.Details[ve.Field], ve.Message)
		}
	}

	return jsonResponse{
		status: status,
		body:   JSONResponse{Code: detail.Code, Error: detail},
	}
}

// ValidationReport answers with the results of a run: 200 when all passed,
// 422 with error details otherwise.
func ValidationReport(results validator.Results, meta map[string]any) Response {
	data := reportData{Valid: results.AllValid(), Results: results}
	if data.Results == nil {
		data.Results = validator.Results{}
	}

	if data.Valid {
		return jsonResponse{
			status: http.StatusOK,
			body:   JSONResponse{Code: "valid", Data: data, Meta: meta},
		}
	}

	resp := errorResponse(results.Err())
	resp.body.Data = data
	resp.body.Meta = meta
	return resp
}

type reportData struct {
	Valid   bool              `json:"valid"`
	Results validator.Results `json:"results"`
}
