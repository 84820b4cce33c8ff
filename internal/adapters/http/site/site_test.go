package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given a mux with the assets registered", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)

		serve := func(method, path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(method, path, nil))
			return w
		}

		Convey("Then the stylesheet is served as css", func() {
			w := serve(http.MethodGet, Stylesheet)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/css")
			So(w.Header().Get("Cache-Control"), ShouldNotBeEmpty)
			So(w.Body.String(), ShouldContainSubstring, "tr.avgRow")
		})

		Convey("Then the directory is not listed", func() {
			So(serve(http.MethodGet, Prefix).Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then unknown assets are not found", func() {
			So(serve(http.MethodGet, Prefix+"missing.js").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then writes are rejected", func() {
			w := serve(http.MethodPost, Stylesheet)
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(w.Header().Get("Allow"), ShouldEqual, "GET, HEAD")
		})
	})

	Convey("Given a nil mux", t, func() {
		So(func() { Register(context.Background(), nil) }, ShouldPanic)
	})
}
