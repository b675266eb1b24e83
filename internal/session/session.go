package session

const (
	stateFileName      = ".humctl-login-state"
	stateFileDirectory = ".humctl-login"
)

var State = Session{}

type Session struct {
	Login LoginSession `json:"login"`
}
