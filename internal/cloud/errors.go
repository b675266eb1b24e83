package cloud

import "errors"

var (
	ErrUnknownCloudProvider = errors.New("unknown cloud provider")
)
