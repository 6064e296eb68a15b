// Package entity defines the domain entities for the recipes feature.
package entity

import "time"

// Recipe is a personal recipe owned by exactly one user.
// Ownership is fixed at creation and never reassigned.
type Recipe struct {
	ID           uint
	UserID       uint // Owning user
	Title        string
	Description  string // Optional
	Ingredients  string
	Instructions string
	ImageURL     string // Optional
	CreatedAt    time.Time
	UpdatedAt    time.Time // Refreshed on every mutation
}
