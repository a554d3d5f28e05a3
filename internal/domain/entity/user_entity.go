package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root for the user domain. It owns its embedded
// orders; an Order never exists outside its user document.
//
// Passwords are stored as bcrypt hashes in Password and are never
// serialized: the json:"-" tags keep both the hash and the store-assigned
// _id out of every API response.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID   int64              `bson:"userId" json:"userId"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
	FullName FullName           `bson:"fullName" json:"fullName"`
	Age      int                `bson:"age" json:"age"`
	Email    string             `bson:"email" json:"email"`
	IsActive bool               `bson:"isActive" json:"isActive"`
	Hobbies  []string           `bson:"hobbies" json:"hobbies"`
	Address  Address            `bson:"address" json:"address"`
	Orders   []Order            `bson:"orders,omitempty" json:"orders,omitempty"`
}

// FullName is the structured name value on a user.
type FullName struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

// Address is the structured address value on a user.
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
}

// Order is an embedded value owned by exactly one user. Orders are
// append-only from the API's perspective.
type Order struct {
	ProductName string  `bson:"productName" json:"productName"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
}

// Total returns price * quantity for a single order line.
func (o Order) Total() float64 {
	return o.Price * o.Quantity
}

// UserUpdate carries the fields a partial update may change. UserID,
// Username and Password are deliberately absent: they are immutable after
// creation. Nil fields are left untouched.
type UserUpdate struct {
	FullName *FullName `bson:"fullName,omitempty"`
	Age      *int      `bson:"age,omitempty"`
	Email    *string   `bson:"email,omitempty"`
	IsActive *bool     `bson:"isActive,omitempty"`
	Hobbies  *[]string `bson:"hobbies,omitempty"`
	Address  *Address  `bson:"address,omitempty"`
	Orders   *[]Order  `bson:"orders,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.FullName == nil &&
		u.Age == nil &&
		u.Email == nil &&
		u.IsActive == nil &&
		u.Hobbies == nil &&
		u.Address == nil &&
		u.Orders == nil
}
