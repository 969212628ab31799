package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author holds the structured name of a post author as stored.
type Author struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

// DisplayName derives the human-readable "First Last" form. Every place a
// post is serialized for output goes through this single derivation; the
// structured name is never exposed on the wire.
func (a Author) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// BlogPost represents a blog post document. ID and Created are assigned by
// the store at insertion and never modified afterwards.
type BlogPost struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
	Author  Author             `bson:"author" json:"author"`
	Created time.Time          `bson:"created" json:"created"`
}
