package models

import "time"

// Claim defines a student's request to take possession of a found item,
// based on the 'claims' table. A claim is owned by its item and removed
// together with it.
type Claim struct {
	ID          int64        `json:"id" db:"id" example:"1"`
	StudentName string       `json:"studentName" db:"student_name" example:"Jane Doe"`
	StudentID   string       `json:"studentId" db:"student_id" example:"20231234"`
	ItemID      int64        `json:"itemId" db:"item_id" example:"1"`
	Phone       string       `json:"phone" db:"phone" example:"5550001122"`
	Reason      string       `json:"reason" db:"reason"`
	Status      ReviewStatus `json:"status" db:"status" example:"pending"`
	ClaimTime   time.Time    `json:"claimTime" db:"claim_time"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Item    *LostItem `json:"item,omitempty"`
	Student *Student  `json:"student,omitempty"`
}

// ClaimSummary is the administrator review-queue row: a claim joined with
// the item and student names it references.
type ClaimSummary struct {
	ID          int64        `json:"id" db:"id"`
	ItemID      int64        `json:"itemId" db:"item_id"`
	ItemName    string       `json:"itemName" db:"item_name"`
	StudentID   string       `json:"studentId" db:"student_id"`
	StudentName string       `json:"studentName" db:"student_name"`
	Status      ReviewStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}
