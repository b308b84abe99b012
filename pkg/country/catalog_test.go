package country_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"isocountry/pkg/country"
	"isocountry/pkg/country/mocks"
	dErrors "isocountry/pkg/domain-errors"
)

var allIdentifiers = []string{"America/Chicago", "America/New_York", "Asia/Tokyo", "UTC"}

func TestCatalog_MemoizesPerCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockTimezoneSource(ctrl)
	source.EXPECT().ListIdentifiers("US").Return([]string{"America/New_York", "America/Chicago"}).Times(1)
	source.EXPECT().ListIdentifiers("JP").Return([]string{"Asia/Tokyo"}).Times(1)

	catalog := country.NewCatalog(source)

	for range 3 {
		assert.Equal(t, []string{"America/New_York", "America/Chicago"}, catalog.ForAlpha2("US"))
		assert.Equal(t, []string{"Asia/Tokyo"}, catalog.ForAlpha2("JP"))
	}
}

func TestCatalog_EmptySourceResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockTimezoneSource(ctrl)
	source.EXPECT().ListIdentifiers("BV").Return(nil).Times(1)

	catalog := country.NewCatalog(source)

	ids := catalog.ForAlpha2("BV")
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
	assert.Empty(t, catalog.ForAlpha2("BV"), "empty results are memoized too")
}

func TestCatalog_ConcurrentFirstLookupQueriesSourceOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockTimezoneSource(ctrl)
	source.EXPECT().ListIdentifiers("US").Return([]string{"America/New_York"}).Times(1)

	catalog := country.NewCatalog(source)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"America/New_York"}, catalog.ForAlpha2("US"))
		}()
	}
	wg.Wait()
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockTimezoneSource(ctrl)
	source.EXPECT().ListIdentifiers("JP").Return([]string{"Asia/Tokyo"}).Times(1)

	catalog := country.NewCatalog(source)
	first := catalog.ForAlpha2("JP")
	first[0] = "Mutated/Zone"

	assert.Equal(t, []string{"Asia/Tokyo"}, catalog.ForAlpha2("JP"))
}

func TestCatalog_LookupHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockTimezoneSource(ctrl)
	source.EXPECT().ListIdentifiers("JP").Return([]string{"Asia/Tokyo"}).Times(1)

	var seen []bool
	catalog := country.NewCatalog(source, country.WithLookupHook(func(code string, cached bool) {
		assert.Equal(t, "JP", code)
		seen = append(seen, cached)
	}))

	catalog.ForAlpha2("JP")
	catalog.ForAlpha2("JP")

	assert.Equal(t, []bool{false, true}, seen)
}

func TestCatalog_IdentifierValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockTimezoneSource(ctrl)
	source.EXPECT().ListAllIdentifiers().Return([]string{"Asia/Tokyo"}).Times(1)

	catalog := country.NewCatalog(source)

	assert.True(t, catalog.IsKnown("Asia/Tokyo"))
	assert.True(t, catalog.IsKnown("UTC"), "UTC is known even when the source omits it")
	assert.False(t, catalog.IsKnown("asia/tokyo"))

	_, err := catalog.NewTimezone("Invalid/Timezone")
	require.ErrorIs(t, err, country.ErrInvalidTimezone)
	assert.EqualError(t, err, "timezone <Invalid/Timezone> is invalid")

	_, err = catalog.NewTimezone("")
	require.ErrorIs(t, err, country.ErrInvalidTimezone)
	assert.EqualError(t, err, "timezone <> is invalid")
}

func TestCatalog_Timezones(t *testing.T) {
	t.Run("default is the first identifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockTimezoneSource(ctrl)
		source.EXPECT().ListIdentifiers("US").Return([]string{"America/New_York", "America/Chicago"})
		source.EXPECT().ListAllIdentifiers().Return(allIdentifiers)

		timezones, err := country.NewCatalog(source).Timezones("US")
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", timezones.Default().Identifier())
		assert.Equal(t, []string{"America/New_York", "America/Chicago"}, timezones.ToStrings(), "source order is kept")
	})

	t.Run("default falls back to UTC", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockTimezoneSource(ctrl)
		source.EXPECT().ListIdentifiers("BV").Return([]string{})

		timezones, err := country.NewCatalog(source).Timezones("BV")
		require.NoError(t, err)
		assert.Zero(t, timezones.Count())
		assert.True(t, timezones.Default().IsUTC())
	})

	t.Run("identifier outside the full set is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockTimezoneSource(ctrl)
		source.EXPECT().ListIdentifiers("US").Return([]string{"US/Eastern"})
		source.EXPECT().ListAllIdentifiers().Return(allIdentifiers)

		_, err := country.NewCatalog(source).Timezones("US")
		require.ErrorIs(t, err, country.ErrInvalidTimezone)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
