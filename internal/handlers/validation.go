package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const validationTitle = "One or more validation errors occurred."

var (
	registerValidatorsOnce sync.Once

	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)

	minInvoicePrice = decimal.NewFromInt(1)
	maxInvoicePrice = decimal.NewFromInt(1_000_000_000)
)

// maxPriceDecimals matches the scale of invoices.price.
const maxPriceDecimals = 2

// ValidationProblem is the 400 response body for invalid input.
type ValidationProblem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// RegisterValidators configures the gin validator engine: JSON and query tag names
// are used as field names, a "phone" tag is added and invoice cross-field rules are installed.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		v.RegisterStructValidation(validateInvoiceRequest, dto.InvoiceRequest{})
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validateInvoiceRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.InvoiceRequest)
	if req.Issued != nil && req.DueDate != nil && req.DueDate.Before(req.Issued.Time) {
		sl.ReportError(req.DueDate, "dueDate", "DueDate", "notbeforeissued", "")
	}
	if req.Price.LessThan(minInvoicePrice) || req.Price.GreaterThan(maxInvoicePrice) {
		sl.ReportError(req.Price, "price", "Price", "pricerange", "")
	} else if !req.Price.Equal(req.Price.Truncate(maxPriceDecimals)) {
		sl.ReportError(req.Price, "price", "Price", "pricescale", "")
	}
}

// writeValidationProblem aborts the request with a 400 problem body.
func writeValidationProblem(c *gin.Context, fields map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationProblem{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.5.1",
		Title:  validationTitle,
		Status: http.StatusBadRequest,
		Errors: fields,
	})
}

// handleBindError translates binding and validation failures into a problem body.
func handleBindError(c *gin.Context, err error) {
	fields := map[string][]string{}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			key := fieldKey(fe)
			fields[key] = append(fields[key], fieldMessage(fe))
		}
	case errors.As(err, &typeErr):
		key := typeErr.Field
		if key == "" {
			key = "body"
		}
		fields[key] = append(fields[key], fmt.Sprintf("The JSON value could not be converted to %s.", typeErr.Type))
	case errors.As(err, &syntaxErr):
		fields["body"] = append(fields["body"], "The request body is not valid JSON.")
	default:
		fields["body"] = append(fields["body"], err.Error())
	}
	writeValidationProblem(c, fields)
}

// fieldKey drops the struct name from the namespace so nested fields read "buyer._id".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "min":
		if isString {
			return fmt.Sprintf("The field %s must be at least %s characters long.", name, fe.Param())
		}
		return fmt.Sprintf("The field %s must be at least %s.", name, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("The field %s must be at most %s characters long.", name, fe.Param())
		}
		return fmt.Sprintf("The field %s must be at most %s.", name, fe.Param())
	case "len":
		return fmt.Sprintf("The field %s must be exactly %s characters long.", name, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", name)
	case "phone":
		return fmt.Sprintf("The %s field is not a valid phone number.", name)
	case "oneof":
		return fmt.Sprintf("The field %s must be one of: %s.", name, fe.Param())
	case "notbeforeissued":
		return "The due date must not be earlier than the issue date."
	case "pricerange":
		return fmt.Sprintf("The field price must be between %s and %s.", minInvoicePrice, maxInvoicePrice)
	case "pricescale":
		return fmt.Sprintf("The field price must have at most %d decimal places.", maxPriceDecimals)
	default:
		return fmt.Sprintf("The field %s is invalid (%s).", name, fe.Tag())
	}
}
