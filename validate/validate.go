// Package validate implements the request validation gate. A route declares
// its expected shape — a typed JSON body and/or route parameter rules — and
// the gate checks the incoming request against it before the handler runs.
// All violations are collected in a single pass and rejected together as a
// 400 envelope with field-level details; on success the handler receives the
// normalized body via FromContext.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/postboard-go/apperror"
	"github.com/user/postboard-go/web"
)

// maxBodyBytes caps request bodies at 10 MB.
const maxBodyBytes = 10 << 20

// validationFailed is the top-level message for every schema rejection.
const validationFailed = "Validation failed"

// Normalizer is implemented by body DTOs that coerce their input (trimming
// strings, lower-casing emails) before constraints are checked.
type Normalizer interface {
	Normalize()
}

// ParamRule constrains a single chi route parameter.
type ParamRule struct {
	Name    string
	Pattern *regexp.Regexp
	Message string
}

// IntID matches decimal identifiers, the only parameter shape in this API.
var IntID = regexp.MustCompile(`^\d+$`)

var check = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the field's wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type bodyKey struct{}

// FromContext returns the validated, normalized body stored by Request.
// The second return is false if no body of that type passed the gate, which
// indicates a route wired without its validation middleware.
func FromContext[T any](ctx context.Context) (*T, bool) {
	body, ok := ctx.Value(bodyKey{}).(*T)
	return body, ok
}

// Params returns middleware that checks route parameters only, for routes
// without a request body.
func Params(rules ...ParamRule) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if details := checkParams(r, rules); len(details) > 0 {
				web.Error(w, r, apperror.NewValidationError(validationFailed, details))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Request returns middleware that decodes the JSON body into T, normalizes
// it, and validates it together with any route parameter rules. Body and
// parameter violations are reported in the same response.
func Request[T any](rules ...ParamRule) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			details := checkParams(r, rules)

			body := new(T)
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			if err := json.NewDecoder(r.Body).Decode(body); err != nil && !errors.Is(err, io.EOF) {
				// An empty body falls through so required-field messages are
				// reported per field; anything unparseable is a single detail.
				details = append(details, apperror.FieldError{Field: "body", Message: "Invalid request body"})
				web.Error(w, r, apperror.NewValidationError(validationFailed, details))
				return
			}
			defer r.Body.Close()

			if n, ok := any(body).(Normalizer); ok {
				n.Normalize()
			}

			if err := check.Struct(body); err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					for _, fe := range verrs {
						details = append(details, apperror.FieldError{
							Field:   "body." + fe.Field(),
							Message: messageFor(fe),
						})
					}
				} else {
					web.Error(w, r, apperror.NewInternalError("Internal server error", err))
					return
				}
			}

			if len(details) > 0 {
				web.Error(w, r, apperror.NewValidationError(validationFailed, details))
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey{}, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func checkParams(r *http.Request, rules []ParamRule) []apperror.FieldError {
	var details []apperror.FieldError
	for _, rule := range rules {
		raw := chi.URLParam(r, rule.Name)
		if !rule.Pattern.MatchString(raw) {
			details = append(details, apperror.FieldError{
				Field:   "params." + rule.Name,
				Message: rule.Message,
			})
		}
	}
	return details
}

// messageFor renders a human-readable message for one violation. Wording
// follows the API's established phrasing, e.g. "Username must be at least 3
// characters long" and "Invalid email format".
func messageFor(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if fe.Param() == "1" {
			return label + " is required"
		}
		return label + " must be at least " + fe.Param() + " characters long"
	case "max":
		return label + " must be less than " + fe.Param() + " characters"
	case "email":
		return "Invalid email format"
	default:
		return label + " is invalid"
	}
}

func labelFor(field string) string {
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
