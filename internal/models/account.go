package models

// Account is the identity record a checkout resolves its customer id from.
// Registration and authentication are handled outside this service.
type Account struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// CustomerProfile carries the optional delivery details for an account,
// joined by account id rather than embedded in it.
type CustomerProfile struct {
	AccountID int64  `json:"account_id"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Customer pairs an account with its profile details, when present.
type Customer struct {
	Account Account          `json:"account"`
	Profile *CustomerProfile `json:"profile,omitempty"`
}
