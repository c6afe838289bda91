package models

import "time"

// Student defines the student model based on the 'students' table.
// StudentID is the campus-issued identifier and is immutable once created.
type Student struct {
	StudentID    string    `json:"studentId" db:"student_id" example:"20231234"`
	Name         string    `json:"name" db:"name" example:"Jane Doe"`
	Email        string    `json:"email" db:"email" example:"jane@school.edu"`
	Phone        string    `json:"phone" db:"phone" example:"5550001122"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
