package types

// ShippingAddress is the flat address record captured during the Address
// step. Lives only inside the checkout session; the save flag is carried for
// the UI but never acted on server-side.
type ShippingAddress struct {
	FullName      string `json:"full_name"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	CountryCode   string `json:"country_code"`
	SaveForFuture bool   `json:"save_for_future"`
}
