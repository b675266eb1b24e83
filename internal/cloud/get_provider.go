package cloud

import (
	"fmt"
	"slices"
	"strings"
)

var providerNames = map[ProviderId]string{
	Azure: "Azure",
}

func GetProviders() []ProviderId {
	ids := make([]ProviderId, 0, len(providerNames))
	for id := range providerNames {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func GetProvider(id string) (ProviderId, error) {
	providerId := ProviderId(strings.TrimSpace(id))
	if _, ok := providerNames[providerId]; !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUnknownCloudProvider, id)
	}
	return providerId, nil
}

func DisplayName(id ProviderId) string {
	if name, ok := providerNames[id]; ok {
		return name
	}
	return string(id)
}
