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

// Package ginx plugs httpx.Writer into gin. Handlers report failures with
// c.Error(err) (or Abort) and leave the response to the middleware:
//
//	r := gin.New()
//	r.Use(ginx.Middleware(httpx.Writer{Pipeline: p}))
//	r.GET("/v1/charges/:id", func(c *gin.Context) {
//	    ch, err := svc.Get(c, c.Param("id"))
//	    if err != nil {
//	        _ = c.Error(err)
//	        return
//	    }
//	    c.JSON(http.StatusOK, ch)
//	})
package ginx

import (
	"dirpx.dev/dstatus/httpx"
	"github.com/gin-gonic/gin"
)

// Middleware returns a gin middleware that writes the last error attached to
// the context through w, unless the handler already wrote a response.
func Middleware(w httpx.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		w.Write(c.Writer, c.Request, last.Err)
	}
}

// Abort stops the handler chain and writes err through w immediately.
func Abort(c *gin.Context, w httpx.Writer, err error) {
	c.Abort()
	w.Write(c.Writer, c.Request, err)
}
