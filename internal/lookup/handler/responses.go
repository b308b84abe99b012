package handler

import (
	"isocountry/internal/lookup/models"
)

// CountryResponse is the HTTP shape of a country.
type CountryResponse struct {
	Name            string   `json:"name"`
	Alpha2          string   `json:"alpha2"`
	Alpha3          string   `json:"alpha3"`
	Timezones       []string `json:"timezones"`
	DefaultTimezone string   `json:"default_timezone"`
}

// ListResponse is the HTTP response for GET /countries.
type ListResponse struct {
	Countries []CountryResponse `json:"countries"`
	Count     int               `json:"count"`
}

// TimezonesResponse is the HTTP response for GET /countries/{code}/timezones.
type TimezonesResponse struct {
	Alpha2    string   `json:"alpha2"`
	Default   string   `json:"default"`
	Timezones []string `json:"timezones"`
}

// FromRecord converts a record to an HTTP response.
func FromRecord(rec *models.Record) CountryResponse {
	tzs := rec.Timezones
	if tzs == nil {
		tzs = []string{}
	}
	return CountryResponse{
		Name:            rec.Name,
		Alpha2:          rec.Alpha2,
		Alpha3:          rec.Alpha3,
		Timezones:       tzs,
		DefaultTimezone: rec.DefaultTimezone,
	}
}

// FromRecords converts records to a list response.
func FromRecords(recs []*models.Record) ListResponse {
	out := ListResponse{Countries: make([]CountryResponse, 0, len(recs))}
	for _, rec := range recs {
		out.Countries = append(out.Countries, FromRecord(rec))
	}
	out.Count = len(out.Countries)
	return out
}

// TimezonesFromRecord projects the timezone portion of a record.
func TimezonesFromRecord(rec *models.Record) TimezonesResponse {
	resp := FromRecord(rec)
	return TimezonesResponse{
		Alpha2:    resp.Alpha2,
		Default:   resp.DefaultTimezone,
		Timezones: resp.Timezones,
	}
}
