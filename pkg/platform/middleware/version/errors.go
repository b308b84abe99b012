package version

import (
	id "isocountry/pkg/domain"
	dErrors "isocountry/pkg/domain-errors"
)

func versionMismatch(requested, route id.APIVersion) error {
	return dErrors.New(dErrors.CodeBadRequest,
		"requested API version "+requested.String()+" is not served by "+route.Prefix())
}
