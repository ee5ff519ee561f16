package domain

// ClientFilter contains search/pagination parameters for client listings.
type ClientFilter struct {
	Search string
	Limit  int
	Offset int
}

// ProjectFilter contains filtering/pagination parameters for project listings.
// nil = any value.
type ProjectFilter struct {
	Status       *ProjectStatus
	Kind         *ProjectKind
	PaymentState *PaymentState
	Search       string
	Limit        int
	Offset       int
}
