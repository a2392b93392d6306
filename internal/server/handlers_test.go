package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomecraft/statscribe/internal/extract"
	"github.com/tomecraft/statscribe/internal/statblock"
)

// stubExtractor returns a canned result or error.
type stubExtractor struct {
	result *extract.Result
	err    error
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte) (*extract.Result, error) {
	return s.result, s.err
}

func newTestServer(ex extractorInterface) *Server {
	return &Server{
		extractor:   ex,
		corsOrigin:  "*",
		maxUploadMB: 10,
	}
}

func multipartImageRequest(t *testing.T, field string) *http.Request {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var imgBuf bytes.Buffer
	require.NoError(t, png.Encode(&imgBuf, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, "statblock.png")
	require.NoError(t, err)
	_, err = fw.Write(imgBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/scan", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestServer_HealthHandler(t *testing.T) {
	server := newTestServer(nil)

	tests := []struct {
		name           string
		method         string
		expectedStatus int
		checkResponse  bool
	}{
		{
			name:           "GET request success",
			method:         "GET",
			expectedStatus: http.StatusOK,
			checkResponse:  true,
		},
		{
			name:           "POST request not allowed",
			method:         "POST",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/health", nil)
			w := httptest.NewRecorder()

			server.healthHandler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.checkResponse {
				var response HealthResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)

				assert.Equal(t, "healthy", response.Status)
				assert.NotEmpty(t, response.Time)
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestServer_ScanHandler_Success(t *testing.T) {
	server := newTestServer(&stubExtractor{
		result: &extract.Result{
			Record: statblock.Record{
				Name:       "Ancient Red Dragon",
				Size:       "gargantuan",
				Type:       "dragon",
				Alignment:  "chaotic evil",
				ArmorClass: 22,
				HitPoints:  546,
				Speed:      "40 ft., climb 40 ft., fly 80 ft.",
			},
			RawText:  "Ancient Red Dragon ...",
			Strategy: "contrast-sharpen",
			Complete: true,
		},
	})

	w := httptest.NewRecorder()
	server.scanHandler(w, multipartImageRequest(t, "image"))

	require.Equal(t, http.StatusOK, w.Code)

	var response ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.True(t, response.Complete)
	require.NotNil(t, response.Monster)
	assert.Equal(t, "Ancient Red Dragon", response.Monster.Name)
	assert.Equal(t, 22, response.Monster.ArmorClass)
	assert.Equal(t, "contrast-sharpen", response.Strategy)
}

func TestServer_ScanHandler_MethodNotAllowed(t *testing.T) {
	server := newTestServer(&stubExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	w := httptest.NewRecorder()
	server.scanHandler(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServer_ScanHandler_MissingFile(t *testing.T) {
	server := newTestServer(&stubExtractor{})

	w := httptest.NewRecorder()
	server.scanHandler(w, multipartImageRequest(t, "photo"))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Contains(t, response.Message, "No image file")
}

func TestServer_ScanHandler_ExtractionErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "undecodable image",
			err:            extract.ErrImageDecode,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no text recognized",
			err:            extract.ErrNoText,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "engine failure",
			err:            errors.New("tesseract exploded"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(&stubExtractor{err: tt.err})

			w := httptest.NewRecorder()
			server.scanHandler(w, multipartImageRequest(t, "image"))

			require.Equal(t, tt.expectedStatus, w.Code)

			var response ScanResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.NotEmpty(t, response.Message)
		})
	}
}

func TestServer_ScanHandler_NilExtractor(t *testing.T) {
	server := newTestServer(nil)

	w := httptest.NewRecorder()
	server.scanHandler(w, multipartImageRequest(t, "image"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
