package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations attaches request-level checks that field tags
// cannot express to gin's validator engine.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(validateLeaveRange, CreateLeaveRequestRequest{})
	}
}

func validateLeaveRange(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateLeaveRequestRequest)
	if req.EndDate.Before(req.StartDate) {
		sl.ReportError(req.EndDate, "EndDate", "endDate", "gtefield", "StartDate")
	}
}
