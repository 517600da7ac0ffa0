package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// requestDecoder turns JSON request bodies into validated DTOs. Every
// failure is reported as a *domain.ValidationError naming the offending field.
type requestDecoder struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newRequestDecoder() (*requestDecoder, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterTranslation("required_without", trans, func(ut ut.Translator) error {
		return ut.Add("required_without", "{0} is required when {1} is missing", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required_without", fe.Field(), strings.ToLower(fe.Param()))
		return t
	}); err != nil {
		return nil, fmt.Errorf("register required_without translation: %w", err)
	}

	return &requestDecoder{validate: validate, trans: trans}, nil
}

// decode reads exactly one JSON object into dst, rejecting unknown fields,
// then runs struct validation.
func (d *requestDecoder) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return bodyError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if name, ok := unknownField(err); ok {
			return domain.NewValidationError(unknownFieldPath(raw, reflect.TypeOf(dst), name), "unknown field")
		}
		return bodyError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}

	if err := d.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate request: %w", err)
		}
		fields := make([]domain.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = domain.FieldError{Field: fieldPath(fe.Namespace()), Message: fe.Translate(d.trans)}
		}
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func bodyError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		tooBigErr *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("body", "malformed JSON")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, "must be "+jsonKind(typeErr.Type))
	case errors.As(err, &tooBigErr):
		return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", tooBigErr.Limit))
	default:
		return domain.NewValidationError("body", err.Error())
	}
}

func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	if !strings.HasPrefix(err.Error(), prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(err.Error(), prefix), `"`), true
}

// unknownFieldPath locates name in raw by walking it alongside t and returns
// its full path, e.g. "categories[0].foo". It falls back to the bare name.
func unknownFieldPath(raw []byte, t reflect.Type, name string) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return name
	}
	if path, ok := findUnknown(v, t, "", name); ok {
		return path
	}
	return name
}

func findUnknown(v any, t reflect.Type, prefix, name string) (string, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return "", false
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, k := range keys {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			field, known := jsonField(t, k)
			if !known {
				if k == name {
					return path, true
				}
				continue
			}
			if found, ok := findUnknown(obj[k], field.Type, path, name); ok {
				return found, true
			}
		}
	case reflect.Slice, reflect.Array:
		arr, ok := v.([]any)
		if !ok {
			return "", false
		}
		for i, elem := range arr {
			if found, ok := findUnknown(elem, t.Elem(), fmt.Sprintf("%s[%d]", prefix, i), name); ok {
				return found, true
			}
		}
	}
	return "", false
}

// jsonField matches key to a field of t the way encoding/json does,
// preferring an exact tag match over a case-insensitive one.
func jsonField(t reflect.Type, key string) (reflect.StructField, bool) {
	var fold *reflect.StructField
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = f.Name
		}
		if tag == key {
			return f, true
		}
		if fold == nil && strings.EqualFold(tag, key) {
			fold = &f
		}
	}
	if fold != nil {
		return *fold, true
	}
	return reflect.StructField{}, false
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// fieldPath drops the struct name from a validator namespace:
// "createNoteRequest.categories[0].name" -> "categories[0].name".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// pathID parses the {id} route variable as a positive integer.
func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &v, nil
}

// queryID parses an optional positive integer query parameter.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, domain.NewValidationError(name, "must be a positive integer")
	}
	return &v, nil
}
