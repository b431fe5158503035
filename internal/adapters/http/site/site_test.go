package site_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/cogscore/internal/adapters/http/site"
	service "github.com/okian/cogscore/internal/app"
	"github.com/okian/cogscore/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func get(mux http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestSiteHandler(t *testing.T) {
	Convey("Given a started service and the site routes", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()
		svc := service.New(service.WithDeployedURL("https://cog.example.org"))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		mux := http.NewServeMux()
		site.Register(ctx, mux, svc)

		Convey("When the page is requested without a query", func() {
			w := get(mux, "/")

			Convey("Then the defaults are scored and classified High", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				body := w.Body.String()
				So(body, ShouldContainSubstring, `data-score="134.64"`)
				So(body, ShouldContainSubstring, `class="alert success"`)
				So(body, ShouldContainSubstring, "Enter Your Information")
				So(body, ShouldContainSubstring, `src="/qr.png"`)
			})
		})

		Convey("When a poor lifestyle is submitted", func() {
			w := get(mux, "/?sleep_duration=3&memory_test_score=20&stress_level=9&daily_screen_time=12&exercise_freq=Low")

			Convey("Then the page shows the Low warning", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `class="alert warning"`)
				So(w.Body.String(), ShouldNotContainSubstring, `class="alert success"`)
			})
		})

		Convey("When a value is outside its range", func() {
			w := get(mux, "/?stress_level=99")

			Convey("Then the form shows the clamped value", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `value="10"`)
			})
		})

		Convey("When the selected option is echoed back", func() {
			w := get(mux, "/?diet_type=Vegan")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `<option value="Vegan" selected>`)
		})

		Convey("When an unknown category is submitted", func() {
			w := get(mux, "/?diet_type=Carnivore")

			Convey("Then the page is re-rendered with a 400 and the message", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, `class="alert error"`)
				So(w.Body.String(), ShouldContainSubstring, "diet_type")
				So(w.Body.String(), ShouldNotContainSubstring, "data-score")
			})
		})

		Convey("When a number cannot be parsed", func() {
			w := get(mux, "/?age=old")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, "age")
		})

		Convey("When the QR image is requested", func() {
			w := get(mux, "/qr.png")

			Convey("Then the start-up PNG is served with cache headers", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "image/png")
				So(w.Header().Get("Cache-Control"), ShouldContainSubstring, "max-age=")
				So(bytes.HasPrefix(w.Body.Bytes(), pngSignature), ShouldBeTrue)

				png, err := svc.QRCode()
				So(err, ShouldBeNil)
				So(w.Body.Bytes(), ShouldResemble, png)
			})
		})

		Convey("When the stylesheet is requested", func() {
			w := get(mux, "/static/style.css")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/css")
		})

		Convey("When an unknown path is requested", func() {
			w := get(mux, "/some-asset")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the page is posted to", func() {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSiteQRBeforeStart(t *testing.T) {
	Convey("Given a service that was never started", t, func() {
		mux := http.NewServeMux()
		site.Register(context.Background(), mux, service.New())

		Convey("Then the QR image is unavailable", func() {
			w := get(mux, "/qr.png")
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			So(w.Body.String(), ShouldContainSubstring, site.ErrServe.Error())
		})
	})
}

func TestSiteHandlerWithNilMux(t *testing.T) {
	Convey("Given a nil mux", t, func() {
		Convey("Then registering should panic", func() {
			So(func() {
				site.Register(context.Background(), nil, service.New())
			}, ShouldPanic)
		})
	})
}
