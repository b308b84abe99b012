package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isocountry/internal/lookup/models"
	"isocountry/internal/lookup/service"
	"isocountry/internal/lookup/store/record"
	"isocountry/pkg/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := service.New(nil, service.WithCache(record.NewInMemory()))
	h := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Route("/v1", h.Register)
	return r
}

func TestGetCountry(t *testing.T) {
	router := newRouter(t)

	t.Run("alpha-2 code", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/US"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[CountryResponse](t, rr)
		assert.Equal(t, "United States of America", resp.Name)
		assert.Equal(t, "USA", resp.Alpha3)
		assert.Equal(t, "America/New_York", resp.DefaultTimezone)
	})

	t.Run("alpha-3 code with name override", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/BRA?name=Brasil"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[CountryResponse](t, rr)
		assert.Equal(t, "Brasil", resp.Name)
		assert.Equal(t, "BR", resp.Alpha2)
	})

	t.Run("override does not leak into cache", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/BR"))
		testutil.AssertJSONContains(t, rr, "name", "Brazil")
	})

	t.Run("invalid code", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/XYZ1"))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)

		body := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "invalid_input", body["error"])
		assert.Equal(t, "alpha code <XYZ1> is invalid", body["error_description"])
	})

	t.Run("lowercase code is invalid", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/jp"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})
}

func TestListCountries(t *testing.T) {
	router := newRouter(t)

	t.Run("all countries", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[ListResponse](t, rr)
		assert.Equal(t, 241, resp.Count)
		assert.Equal(t, "AF", resp.Countries[0].Alpha2)
	})

	t.Run("filtered, trimmed and deduplicated", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries?codes=JP,%20DE,JPN&codes=DE"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[ListResponse](t, rr)
		require.Equal(t, 3, resp.Count)
		assert.Equal(t, "JP", resp.Countries[0].Alpha2)
		assert.Equal(t, "DE", resp.Countries[1].Alpha2)
		assert.Equal(t, "JP", resp.Countries[2].Alpha2)
	})

	t.Run("invalid code fails the list", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries?codes=JP,ZZ"))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_input")
	})
}

func TestTimezoneEndpoints(t *testing.T) {
	router := newRouter(t)

	t.Run("lists timezones in source order", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/PRT/timezones"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[TimezonesResponse](t, rr)
		assert.Equal(t, "PT", resp.Alpha2)
		assert.Equal(t, "Europe/Lisbon", resp.Default)
		assert.Equal(t, []string{"Europe/Lisbon", "Atlantic/Madeira", "Atlantic/Azores"}, resp.Timezones)
	})

	t.Run("country without zones defaults to UTC", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/BV/timezones"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[TimezonesResponse](t, rr)
		assert.Equal(t, "UTC", resp.Default)
		assert.NotNil(t, resp.Timezones)
		assert.Empty(t, resp.Timezones)
	})

	t.Run("finds a multi-segment identifier", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet,
			"/v1/countries/AR/timezones/America/Argentina/Buenos_Aires"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[models.TimezoneDetail](t, rr)
		assert.Equal(t, "America/Argentina/Buenos_Aires", resp.Identifier)
		assert.True(t, resp.IsDefault)
	})

	t.Run("offset follows the request clock", func(t *testing.T) {
		winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		summer := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

		for at, want := range map[time.Time]int{winter: -5 * 3600, summer: -4 * 3600} {
			req := testutil.WithRequestTime(
				testutil.NewRequest(t, http.MethodGet, "/v1/countries/US/timezones/America/New_York"), at)
			rr := testutil.DoRequest(router, testutil.WithRequestID(req, "req-tz"))
			testutil.AssertStatusOK(t, rr)

			resp := testutil.UnmarshalResponse[models.TimezoneDetail](t, rr)
			assert.Equal(t, want, resp.OffsetSeconds, at.String())
		}
	})

	t.Run("identifier of another country is not found", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/v1/countries/DE/timezones/Asia/Tokyo"))
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}
