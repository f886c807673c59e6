package entity

import "github.com/google/uuid"

// Comment is a free-text remark a user leaves on a plant. The author
// reference may be absent in storage (a deleted account leaves its
// comments behind), so Author can be nil even for a persisted comment.
type Comment struct {
	ID             uuid.UUID
	PlantID        uuid.UUID
	Plant          *Plant
	AuthorUsername string
	Author         *User
	Content        string
}
