package session

// LoginSession keeps the values of the last interactive login so they can be
// offered again. The browser session id is deliberately absent.
type LoginSession struct {
	OrgName        string `json:"orgName"`
	Username       string `json:"username"`
	LoginURL       string `json:"loginUrl"`
	SecretBaseURL  string `json:"secretBaseUrl"`
	BrowserBaseURL string `json:"browserBaseUrl"`
	CloudProvider  string `json:"cloudProvider"`
}

func (s LoginSession) IsEmpty() bool {
	return s == LoginSession{}
}
