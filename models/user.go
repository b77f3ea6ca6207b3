package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the single authorization-relevant attribute of a user record.
type Role string

const (
	RoleNone      Role = ""
	RoleUser      Role = "user"
	RoleTempAdmin Role = "temp_admin"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string        `json:"email" bson:"email"`
	DisplayName string        `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhotoURL    string        `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role        Role          `json:"role,omitempty" bson:"role,omitempty"`
}

// UpsertUserRequest is the body of POST/PUT /users. Beyond email, the fields
// mirror what the storefront sends after a Firebase sign-in.
type UpsertUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	Role        Role   `json:"role"`
}

// RoleAssignRequest is the body of PUT /users/tempadmin and /users/admin.
// Email is the target account, Requester identifies who is asking.
type RoleAssignRequest struct {
	Email     string `json:"email"`
	Requester string `json:"requester"`
}

// RolesResponse is returned by GET /users/:email/roles.
type RolesResponse struct {
	SuperAdmin bool `json:"superAdmin"`
	TempAdmin  bool `json:"tempAdmin"`
}
