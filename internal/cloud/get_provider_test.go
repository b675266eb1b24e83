package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProvider(t *testing.T) {
	var tests = []struct {
		name        string
		id          string
		expected    ProviderId
		expectedErr error
	}{
		{name: "azure", id: "azure", expected: Azure},
		{name: "surrounding spaces", id: " azure ", expected: Azure},
		{name: "unknown", id: "aws", expectedErr: ErrUnknownCloudProvider},
		{name: "case sensitive", id: "Azure", expectedErr: ErrUnknownCloudProvider},
		{name: "empty", id: "", expectedErr: ErrUnknownCloudProvider},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider, err := GetProvider(tc.id)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, provider)
		})
	}
}

func TestGetProviders(t *testing.T) {
	assert.Equal(t, []ProviderId{Azure}, GetProviders())
	assert.Equal(t, "Azure", DisplayName(Azure))
	assert.Equal(t, "other", DisplayName(ProviderId("other")))
	assert.Contains(t, GetProviders(), DefaultProvider)
}
