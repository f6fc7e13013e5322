package dto

// PersonOption: entri ringkas untuk dropdown "person belum punya akun".
type PersonOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PeopleWithoutAccountsResponse dikelompokkan per role person.
type PeopleWithoutAccountsResponse struct {
	Teachers []PersonOption `json:"teachers"`
	Students []PersonOption `json:"students"`
	Parents  []PersonOption `json:"parents"`
}
