package core

// LoginUsers mirrors config/loginusers.vdf.
type LoginUsers struct {
	Users map[string]LoginUser `json:"users"`
}

type LoginUser struct {
	AccountName string `json:"AccountName"`
	PersonaName string `json:"PersonaName"`
	MostRecent  string `json:"MostRecent"`
}
