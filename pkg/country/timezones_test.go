package country_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isocountry/pkg/country"
	dErrors "isocountry/pkg/domain-errors"
	"isocountry/pkg/platform/sentinel"
)

func mustTimezones(t *testing.T, code country.Alpha2Code) country.Timezones {
	t.Helper()
	timezones, err := country.TimezonesFromAlpha2(code)
	require.NoError(t, err)
	return timezones
}

func TestTimezones_SingleZoneCountry(t *testing.T) {
	timezones := mustTimezones(t, "JP")

	assert.Equal(t, 1, timezones.Count())
	assert.Equal(t, "Asia/Tokyo", timezones.Default().Identifier())
	assert.True(t, timezones.Contains("Asia/Tokyo"))
	assert.False(t, timezones.Contains("America/New_York"))
	assert.False(t, timezones.Contains("asia/tokyo"), "membership is case-sensitive")
}

func TestTimezones_MultiZoneCountry(t *testing.T) {
	timezones := mustTimezones(t, "US")
	require.Greater(t, timezones.Count(), 1)

	values := timezones.ToStrings()
	unique := make(map[string]struct{}, len(values))
	for _, v := range values {
		unique[v] = struct{}{}
	}
	assert.Len(t, unique, len(values), "identifiers are distinct")

	for _, tz := range timezones.All() {
		found, err := timezones.FindByIdentifier(tz.Identifier())
		require.NoError(t, err)
		assert.Equal(t, tz, found)
	}
}

func TestTimezones_FindByIdentifierMiss(t *testing.T) {
	timezones := mustTimezones(t, "DE")

	_, err := timezones.FindByIdentifier("Asia/Tokyo")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = mustTimezones(t, "BV").FindByIdentifier("UTC")
	require.ErrorIs(t, err, sentinel.ErrNotFound, "UTC is a default, never a lookup match")
}

func TestTimezones_Projections(t *testing.T) {
	for _, code := range []country.Alpha2Code{"PT", "RU", "BR", "IN", "BV"} {
		t.Run(code.String(), func(t *testing.T) {
			timezones := mustTimezones(t, code)
			all := timezones.All()
			strs := timezones.ToStrings()

			assert.Len(t, all, timezones.Count())
			assert.Len(t, strs, timezones.Count())
			for i := range all {
				assert.Equal(t, all[i].Identifier(), strs[i])
			}
			if timezones.Count() > 0 {
				assert.Equal(t, all[0], timezones.Default())
			}
		})
	}
}

func TestTimezones_DefaultFallsBackToUTC(t *testing.T) {
	timezones := mustTimezones(t, "BV")

	assert.Zero(t, timezones.Count())
	assert.Equal(t, "UTC", timezones.Default().Identifier())
	assert.Equal(t, country.UTC(), country.Timezones{}.Default(), "zero value also defaults to UTC")
}

func TestTimezones_IsImmutable(t *testing.T) {
	timezones := mustTimezones(t, "US")
	all := timezones.All()
	all[0] = country.UTC()

	assert.NotEqual(t, "UTC", timezones.All()[0].Identifier())
}

func TestTimezones_SameCodeIsConsistent(t *testing.T) {
	first := mustTimezones(t, "BR")
	second := mustTimezones(t, "BR")

	assert.Equal(t, first.ToStrings(), second.ToStrings())
	assert.Equal(t, first.Count(), second.Count())
}

func TestTimezones_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(mustTimezones(t, "PT"))
	require.NoError(t, err)
	assert.JSONEq(t, `["Europe/Lisbon","Atlantic/Madeira","Atlantic/Azores"]`, string(data))

	data, err = json.Marshal(mustTimezones(t, "BV"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestTimezone(t *testing.T) {
	t.Run("accepts known identifiers", func(t *testing.T) {
		tz, err := country.NewTimezone("America/Sao_Paulo")
		require.NoError(t, err)
		assert.Equal(t, "America/Sao_Paulo", tz.String())

		loc, err := tz.Location()
		require.NoError(t, err)
		assert.Equal(t, "America/Sao_Paulo", loc.String())
	})

	t.Run("UTC is always valid", func(t *testing.T) {
		tz, err := country.NewTimezone("UTC")
		require.NoError(t, err)
		assert.True(t, tz.IsUTC())
		assert.Equal(t, country.UTC(), tz)
	})

	t.Run("rejects unknown and empty identifiers", func(t *testing.T) {
		for _, id := range []string{"Invalid/Timezone", "", "asia/tokyo"} {
			_, err := country.NewTimezone(id)
			require.ErrorIs(t, err, country.ErrInvalidTimezone, id)
		}
	})

	t.Run("zero value has no location", func(t *testing.T) {
		_, err := country.Timezone{}.Location()
		require.ErrorIs(t, err, country.ErrInvalidTimezone)
	})
}
