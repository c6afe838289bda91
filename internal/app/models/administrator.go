package models

// Administrator defines the staff account model based on the 'administrators' table.
type Administrator struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Email        string `json:"email" db:"email" example:"staff@school.edu"`
	PasswordHash string `json:"-" db:"password_hash"`
}
