package domain

// Actor identifies the caller of an engine operation. The request layer
// resolves credentials; the engine only distinguishes administrators from
// anonymous users.
type Actor struct {
	Name  string
	Email string
	Admin bool
}

// Anonymous is the actor of unauthenticated requests.
var Anonymous = Actor{}
