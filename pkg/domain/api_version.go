package domain

import (
	dErrors "isocountry/pkg/domain-errors"
)

// APIVersion represents a valid API version string.
// This is a domain primitive that enforces validity at parse time.
type APIVersion string

// Supported API versions.
const (
	APIVersionV1 APIVersion = "v1"
)

var supportedVersions = map[APIVersion]struct{}{
	APIVersionV1: {},
}

// ParseAPIVersion validates and returns an APIVersion.
func ParseAPIVersion(s string) (APIVersion, error) {
	v := APIVersion(s)
	if _, ok := supportedVersions[v]; !ok {
		return "", dErrors.New(dErrors.CodeBadRequest, "unknown API version: "+s)
	}
	return v, nil
}

func (v APIVersion) String() string {
	return string(v)
}

// IsNil returns true if the API version is empty.
func (v APIVersion) IsNil() bool {
	return v == ""
}

// Prefix is the route prefix for this version, e.g. "/v1".
func (v APIVersion) Prefix() string {
	return "/" + string(v)
}
