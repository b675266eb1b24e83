package login

import (
	"encoding/json"
)

// Result is the outcome of one Item. A successful result carries the task
// response as LoginResult, a failed one carries Error.
type Result struct {
	Success     bool
	LoginResult any
	Error       string
}

func Succeeded(loginResult any) Result {
	return Result{Success: true, LoginResult: loginResult}
}

func Failed(err error) Result {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Result{Success: false, Error: msg}
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success     bool `json:"success"`
			LoginResult any  `json:"loginResult"`
		}{true, r.LoginResult})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, r.Error})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success     bool   `json:"success"`
		LoginResult any    `json:"loginResult"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Result{Success: raw.Success, LoginResult: raw.LoginResult, Error: raw.Error}
	return nil
}

func CountFailed(results []Result) int {
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	return failed
}
