// Package model contains the GORM-specific structs mapping the domain
// entities onto PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel is the GORM-specific struct for the 'recipes' table. It is the
// aggregate root: ingredients, steps and reviews hang off it with cascading
// deletes.
type RecipeModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string    `gorm:"not null;index"`
	MinutesToMake    int       `gorm:"not null"`
	DifficultyRating int       `gorm:"not null;check:difficulty_rating >= 0 AND difficulty_rating <= 10"`
	Author           string    `gorm:"not null;index"`
	Ingredients      []*IngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Steps            []*StepModel       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Reviews          []*ReviewModel     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
type IngredientModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"not null"`
	Amount   string    `gorm:"not null"`
	State    string
	Position int `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// StepModel is the GORM-specific struct for the 'steps' table. Step numbers
// carry no uniqueness constraint.
type StepModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	StepNumber  int       `gorm:"not null;check:step_number >= 1"`
	Description string    `gorm:"not null"`
	Position    int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (StepModel) TableName() string {
	return "steps"
}
