/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package ginx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/httpx"
	"dirpx.dev/dstatus/translate"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func router() *gin.Engine {
	p := translate.NewBuilder(translate.Classify()).
		Add(translate.Annotate("x-served-by", "billing-1")).
		Add(translate.OnCode(code.QuotaExceeded, codes.FailedPrecondition)).
		MustBuild()
	w := httpx.Writer{Pipeline: p}

	r := gin.New()
	r.Use(Middleware(w))
	r.GET("/quota", func(c *gin.Context) {
		_ = c.Error(dstatus.New(code.QuotaExceeded, "storage quota exhausted"))
	})
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusAccepted, "partial")
		_ = c.Error(dstatus.New(code.Internal, "late"))
	})
	r.GET("/abort", func(c *gin.Context) {
		Abort(c, w, dstatus.New(code.NotFound, "no such charge"))
	})
	return r
}

func TestMiddleware(t *testing.T) {
	r := router()
	tests := []struct {
		path   string
		status int
		header string
	}{
		{"/quota", http.StatusBadRequest, "billing-1"},
		{"/ok", http.StatusOK, ""},
		{"/written", http.StatusAccepted, ""},
		{"/abort", http.StatusNotFound, "billing-1"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body)
			}
			if got := rec.Header().Get(httpx.MetadataHeaderPrefix + "x-served-by"); got != tt.header {
				t.Fatalf("header = %q, want %q", got, tt.header)
			}
		})
	}
}
