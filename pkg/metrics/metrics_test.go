package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "cogscore")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithScoreBuckets([]float64{90, 100, 110}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options are applied", func() {
				So(manager.namespace, ShouldEqual, "test")
				So(manager.subsystem, ShouldEqual, "unit")
				So(manager.scoreBuckets, ShouldResemble, []float64{90, 100, 110})
			})

			Convey("And metrics are registered under the custom names", func() {
				manager.predictions.WithLabelValues("High").Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_predictions_total")
			})
		})

		Convey("When empty options are passed", func() {
			manager := NewManager(
				WithNamespace(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "cogscore")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording predictions", func() {
			before := testutil.ToFloat64(globalManager.predictions.WithLabelValues("Low"))
			RecordPrediction("Low", 92.5)
			RecordPrediction("Low", 97.1)

			Convey("Then the label counter increases", func() {
				after := testutil.ToFloat64(globalManager.predictions.WithLabelValues("Low"))
				So(after-before, ShouldEqual, 2.0)
			})
		})

		Convey("When recording QR generation", func() {
			RecordQRGeneration(1.5, 812)

			Convey("Then the image size gauge is set", func() {
				So(testutil.ToFloat64(globalManager.qrImageBytes), ShouldEqual, 812.0)
			})
		})

		Convey("When recording validation errors", func() {
			before := testutil.ToFloat64(globalManager.validationErrors.WithLabelValues("api"))
			RecordValidationError("api")
			So(testutil.ToFloat64(globalManager.validationErrors.WithLabelValues("api"))-before, ShouldEqual, 1.0)
		})

		Convey("When recording HTTP, error and system metrics", func() {
			So(func() {
				RecordEvaluationLatency(0.02)
				RecordHTTPRequest("score", "POST", "200")
				RecordHTTPRequestDuration("score", "POST", "200", 1.2)
				RecordErrorByComponent("qr", "encode")
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("score", "POST", "client_error")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry gathers without error", func() {
			_, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
		})
	})
}
