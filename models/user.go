package models

type User struct {
	ID       string `bson:"_id" json:"id"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`

	// Movies holds the ids of the movies this user has added, in the
	// order they were added. Append-only.
	Movies []string `bson:"movie" json:"movie"`
}
