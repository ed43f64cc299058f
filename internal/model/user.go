package model

// User is an author as served by /fakeApi/users. Never mutated locally.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
