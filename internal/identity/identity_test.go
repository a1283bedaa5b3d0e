package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueryResolvesBothStages(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"203.0.113.7"}`))
	}))
	defer echo.Close()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/203.0.113.7" {
			t.Errorf("geolocation called with %q, want the echoed IP", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","city":"Reykjavik","regionName":"Capital Region",
			"country":"Iceland","lat":64.14,"lon":-21.94,"isp":"Example ISP"}`))
	}))
	defer geo.Close()

	client := New(Options{IPEndpoint: echo.URL, GeoEndpoint: geo.URL})
	report, err := client.Query(context.Background())
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	want := Report{
		PublicIP: "203.0.113.7",
		Geo: &Geo{
			City:    "Reykjavik",
			Region:  "Capital Region",
			Country: "Iceland",
			Lat:     64.14,
			Lon:     -21.94,
			ISP:     "Example ISP",
		},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryEchoFailureSkipsGeolocation(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer echo.Close()

	var geoCalls atomic.Int64
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geoCalls.Add(1)
	}))
	defer geo.Close()

	client := New(Options{IPEndpoint: echo.URL, GeoEndpoint: geo.URL})
	report, err := client.Query(context.Background())
	if err == nil {
		t.Fatal("expected error when echo endpoint fails")
	}
	if report.PublicIP != "" || report.Geo != nil {
		t.Fatalf("expected empty report, got %+v", report)
	}
	if geoCalls.Load() != 0 {
		t.Fatalf("geolocation must not run without an IP, got %d calls", geoCalls.Load())
	}
}

func TestQueryGeolocationFailureKeepsIP(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"198.51.100.4"}`))
	}))
	defer echo.Close()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer geo.Close()

	client := New(Options{IPEndpoint: echo.URL, GeoEndpoint: geo.URL})
	report, err := client.Query(context.Background())
	if err == nil {
		t.Fatal("expected error when geolocation fails")
	}
	if report.PublicIP != "198.51.100.4" {
		t.Fatalf("expected partial report with IP, got %+v", report)
	}
	if report.Geo != nil {
		t.Fatalf("expected nil geo, got %+v", report.Geo)
	}
}

func TestQueryRejectedLookupStatus(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"192.0.2.1"}`))
	}))
	defer echo.Close()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer geo.Close()

	client := New(Options{IPEndpoint: echo.URL, GeoEndpoint: geo.URL})
	report, err := client.Query(context.Background())
	if err == nil {
		t.Fatal("expected error for rejected lookup")
	}
	if report.PublicIP != "192.0.2.1" || report.Geo != nil {
		t.Fatalf("expected IP-only report, got %+v", report)
	}
}

func TestQueryEmptyEchoBody(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"  "}`))
	}))
	defer echo.Close()

	client := New(Options{IPEndpoint: echo.URL})
	if _, err := client.Query(context.Background()); err == nil {
		t.Fatal("expected error for blank echo response")
	}
}
