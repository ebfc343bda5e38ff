package domain

import "strings"

// Store represents a retail store (trading partner) whose shelves are photographed
type Store struct {
	ID        int64     `json:"id"`
	StoreName string    `json:"storeName"`
	Branch    string    `json:"branch,omitempty"`
	Channel   string    `json:"channel,omitempty"`
	Manager   string    `json:"manager,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// Ref returns the weak reference items hold to this store
func (s Store) Ref() StoreRef {
	return StoreRef{ID: s.ID, StoreName: s.StoreName}
}

// ListLabel renders "name [branch] (channel)" for store listings
func (s Store) ListLabel() string {
	var b strings.Builder
	b.WriteString(s.StoreName)
	if s.Branch != "" {
		b.WriteString(" [" + s.Branch + "]")
	}
	if s.Channel != "" {
		b.WriteString(" (" + s.Channel + ")")
	}
	return b.String()
}

// OptionLabel renders "name (channel)" for the upload target selector
func (s Store) OptionLabel() string {
	if s.Channel == "" {
		return s.StoreName
	}
	return s.StoreName + " (" + s.Channel + ")"
}

// NewStore holds the fields submitted when adding a store
type NewStore struct {
	StoreName string `json:"storeName" validate:"required,max=200"`
	Channel   string `json:"channel,omitempty" validate:"max=100"`
	Branch    string `json:"branch,omitempty" validate:"max=100"`
	Manager   string `json:"manager,omitempty" validate:"max=100"`
}

// Validate checks the new store before it is submitted
func (n NewStore) Validate() error {
	n.StoreName = strings.TrimSpace(n.StoreName)
	return validateStruct(n)
}
