//go:build e2e

package helper

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	reqdto "festivo/internal/handler/dto/request"
	commonhttp "festivo/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Login authenticates through the real endpoint and returns the session cookies.
func Login(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	reqBody := reqdto.LoginRequest{Email: email, Password: password}
	rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login", reqBody, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	cookies := commonhttp.ExtractCookies(rec)
	require.NotEmpty(t, cookies, "login set no cookies")
	return cookies
}

// UploadFile performs a multipart POST with the file under the given form field.
func UploadFile(t *testing.T, router *gin.Engine, path, field, fileName, contentType string, content []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
