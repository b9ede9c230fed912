package entity

import (
	"github.com/google/uuid"
)

// User is the referenced identity record. Accounts are managed by the
// external identity collaborator; the story domain only reads them for
// denormalized summaries.
type User struct {
	Id           uuid.UUID
	Username     string
	Name         string
	ProfileImage string
}
