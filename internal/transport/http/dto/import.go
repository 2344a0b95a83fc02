package dto

import "github.com/baechuer/leads-api/internal/application/leadimport"

type ImportRowError struct {
	Row   int    `json:"row"`
	Email string `json:"email,omitempty"`
	Error string `json:"error"`
}

type ImportResultView struct {
	Success   bool             `json:"success"`
	Processed int              `json:"processed"`
	Created   int              `json:"created"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}

func NewImportResultView(res leadimport.Result) ImportResultView {
	v := ImportResultView{
		Success:   res.Success,
		Processed: res.Processed,
		Created:   res.Created,
	}
	for _, e := range res.Errors {
		v.Errors = append(v.Errors, ImportRowError{Row: e.Row, Email: e.Email, Error: e.Error})
	}
	return v
}
