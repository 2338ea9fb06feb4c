package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/go-playground/validator/v10"
)

const (
	maxBodyBytes = 1 << 20
	maxPage      = 10000

	// bcrypt rejects inputs longer than this many bytes.
	bcryptMaxBytes = 72
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator; field names in errors use json tags.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= bcryptMaxBytes
		})
	})
	return validate
}

// Decode reads a JSON body into dst and validates it.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", apperror.KindBadRequest)
		}
		if errors.Is(err, io.EOF) {
			return apperror.BadRequest("Request body is required")
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return apperror.BadRequest("Malformed JSON body")
		}
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return apperror.BadRequest(strings.TrimPrefix(err.Error(), "json: "))
		}
		return err
	}
	return Validate(dst)
}

func Validate(v any) error {
	return Validator().Struct(v)
}

// QueryInt parses an integer query parameter, falling back to def when absent or invalid.
func QueryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func QueryBool(r *http.Request, key string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return b
}

// Pagination reads page and page_size, clamped to sane bounds.
func Pagination(r *http.Request) (page, pageSize int) {
	page = QueryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	pageSize = QueryInt(r, "page_size", 20)
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
