package cloud

// ProviderId identifies the cloud provider whose secret store holds the
// user credentials. The set is closed: only ids registered in GetProviders
// are accepted.
type ProviderId string

const (
	Azure ProviderId = "azure"
)

const DefaultProvider = Azure

func (p ProviderId) String() string {
	return string(p)
}
