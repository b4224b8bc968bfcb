package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "staffing-backoffice/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
)

// bindRequest fills req from a JSON body, a form body or the query string,
// using the json field names in every case. JSON bodies are cached on the
// context so a request can be bound more than once.
func bindRequest(c *gin.Context, req interface{}) error {
	if c.Request.Method != http.MethodGet && c.Request.ContentLength != 0 && c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
			return apperrors.NewValidationError("", "invalid request body: "+err.Error())
		}
		if err := decodeValues(c.Request.URL.Query(), req, true); err != nil {
			return err
		}
		return nil
	}

	values := url.Values{}
	for k, v := range c.Request.URL.Query() {
		values[k] = v
	}
	if c.Request.Method != http.MethodGet && c.Request.Body != nil {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return apperrors.NewValidationError("", "invalid form body: "+err.Error())
		}
		for k, v := range c.Request.PostForm {
			values[k] = v
		}
	}
	return decodeValues(values, req, false)
}

// decodeValues maps string values onto req. With onlyPaging set just the
// page, per_page and limit keys are applied, so query paging works next to a
// JSON body.
func decodeValues(values url.Values, req interface{}, onlyPaging bool) error {
	input := map[string]interface{}{}
	for key, v := range values {
		if len(v) == 0 || (len(v) == 1 && v[0] == "") {
			continue
		}
		key = strings.TrimSuffix(key, "[]")
		if onlyPaging && key != "page" && key != "per_page" && key != "limit" {
			continue
		}
		if len(v) == 1 {
			input[key] = v[0]
		} else {
			input[key] = v
		}
	}
	if limit, ok := input["limit"]; ok {
		if _, set := input["per_page"]; !set {
			input["per_page"] = limit
		}
		delete(input, "limit")
	}
	delete(input, "action")
	if len(input) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           req,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return apperrors.NewValidationError("", "invalid parameters: "+err.Error())
	}
	return nil
}

// pathID parses the :id path parameter
func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("id", "invalid id")
	}
	return id, nil
}
