package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"staffing-backoffice/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// SetupAuthenticatedHTTPTest initializes Gin with every request attributed to p
func SetupAuthenticatedHTTPTest(p auth.Principal) *HTTPTestSuite {
	s := SetupHTTPTest()
	s.Router.Use(func(c *gin.Context) {
		auth.SetPrincipal(c, p)
		c.Next()
	})
	return s
}

// PostForm executes a form-encoded POST request
func (suite *HTTPTestSuite) PostForm(url string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// MakeRequest executes a request with body encoded as JSON when present
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// EnvelopeCase is one request and the envelope it must answer with.
// Form takes precedence over Body.
type EnvelopeCase struct {
	Name    string
	Method  string
	URL     string
	Body    interface{}
	Form    url.Values
	Setup   func()
	Status  int
	Success bool
	Message string
}

// RunEnvelopeCases runs each case against the router and checks status, success and message
func (suite *HTTPTestSuite) RunEnvelopeCases(t *testing.T, cases []EnvelopeCase) {
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}

			var recorder *httptest.ResponseRecorder
			if tc.Form != nil {
				recorder = suite.PostForm(tc.URL, tc.Form)
			} else {
				recorder = suite.MakeRequest(tc.Method, tc.URL, tc.Body)
			}

			if tc.Success {
				AssertSuccessResponse(t, recorder, tc.Status)
				if tc.Message != "" {
					assert.Equal(t, tc.Message, decodeEnvelope(t, recorder).Message)
				}
				return
			}
			AssertErrorResponse(t, recorder, tc.Status, tc.Message)
		})
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env), recorder.Body.String())
	return env
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts a success:false envelope with the given status and message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Success)
	if expectedMessage != "" {
		assert.Contains(t, env.Message, expectedMessage)
	}
}

// AssertSuccessResponse asserts a success:true envelope with the given status
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.True(t, decodeEnvelope(t, recorder).Success, recorder.Body.String())
}
