package domain

// DefaultEnvironment is the environment assumed whenever callers omit one.
const DefaultEnvironment Environment = "Test"

// Environment names a deployment context ("Test", "Staging") under which
// accounts are grouped.
type Environment = string

// Account holds a set of login credentials. The struct is comparable so
// accounts can act as set members and map keys; two accounts with the same
// fields are the same account.
type Account struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Label returns the human-facing name for pickers and log lines.
func (a Account) Label() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}
