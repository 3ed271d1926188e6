package domain

// Client is a customer organization. Key is derived from Name with
// DeriveKey and kept unique; archived clients stay queryable.
type Client struct {
	ID       int64  `json:"id" db:"id"`
	Key      string `json:"key" db:"key"`
	Name     string `json:"name" db:"name"`
	Archived bool   `json:"archived" db:"archived"`
}

// Account is a named sub-unit of a Client with exactly one responsible
// user. At most one non-archived account may reference a given
// responsible at a time.
type Account struct {
	ID            int64  `json:"id" db:"id"`
	Key           string `json:"key" db:"key"`
	Name          string `json:"name" db:"name"`
	ClientID      int64  `json:"clientId" db:"client_id"`
	ResponsibleID int64  `json:"responsibleId" db:"responsible_id"`
	Archived      bool   `json:"archived" db:"archived"`
}
