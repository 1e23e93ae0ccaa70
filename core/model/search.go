package model

// NodeHit is one node result from the search index
type NodeHit struct {
	ID          string
	Name        string
	Description string
	NodeType    string
	ProjectID   string
	ProjectName string
	Score       float64
}

// UserHit is one user result from the search index
type UserHit struct {
	ID       string
	Username string
	FullName string
	Email    string
	Score    float64
}
