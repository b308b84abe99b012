package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "isocountry/pkg/domain-errors"
)

func TestParseAPIVersion(t *testing.T) {
	v, err := ParseAPIVersion("v1")
	require.NoError(t, err)
	assert.Equal(t, APIVersionV1, v)
	assert.Equal(t, "/v1", v.Prefix())
	assert.False(t, v.IsNil())

	for _, bad := range []string{"", "v2", "V1", "1"} {
		_, err := ParseAPIVersion(bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest), bad)
	}
}
