// Package schema declares the record types of the person directory API and
// the projection constructors that shape responses.
//
// Each type is a flat field list: constraints live in `validate` tags and
// wire names in `json` tags, so the same declaration drives both input
// binding and output serialization. Derived response shapes are built by
// explicit field-copying constructors rather than embedding, so an output
// type can never pick up a field (such as password) by accident.
package schema

import (
	"math"
	"mime/multipart"
)

// HairColor is the closed set of accepted hair colors.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
)

// Person is the inbound person record.
//
// It is constructed fresh from the request body on every call and discarded
// after the handler returns. The password field exists only here; no
// response type declares it.
type Person struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Age       int    `json:"age" validate:"required,gt=0,lte=115"`

	// IsMarried defaults to false when omitted.
	IsMarried bool `json:"is_married"`

	Email string `json:"email" validate:"required,email"`

	// The optional fields are pointers so that absent and present-but-empty
	// are distinct: a nil pointer skips validation, while a supplied value,
	// empty string included, must satisfy its constraint.
	HairColor  *HairColor `json:"hair_color" validate:"omitempty,oneof=white brown black blonde red"`
	WebsiteURL *string    `json:"website_url" validate:"omitempty,url"`
	CreditCard *string    `json:"credit_card" validate:"omitempty,credit_card"`

	Password string `json:"password" validate:"required,min=8"`
}

// PersonOut is Person without the password field. It is only ever produced
// by projection; it is never bound from input. Optional fields that were
// not supplied serialize as explicit nulls so the response always carries
// the full declared field set.
type PersonOut struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Age        int        `json:"age"`
	IsMarried  bool       `json:"is_married"`
	Email      string     `json:"email"`
	HairColor  *HairColor `json:"hair_color"`
	WebsiteURL *string    `json:"website_url"`
	CreditCard *string    `json:"credit_card"`
}

// PersonOutFrom projects a Person onto its public field set.
//
// The projection is structural: the password is dropped because PersonOut
// has no such field, not because a handler remembered to scrub it.
func PersonOutFrom(p Person) PersonOut {
	return PersonOut{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Age:        p.Age,
		IsMarried:  p.IsMarried,
		Email:      p.Email,
		HairColor:  p.HairColor,
		WebsiteURL: p.WebsiteURL,
		CreditCard: p.CreditCard,
	}
}

// Location is the inbound location record.
type Location struct {
	City    string `json:"city" validate:"required,min=1"`
	State   string `json:"state" validate:"required,min=1"`
	Country string `json:"country" validate:"required,min=1"`
}

// PersonLocationOut is the union of the PersonOut and Location field sets,
// produced as the response shape of the update operation.
type PersonLocationOut struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Age        int        `json:"age"`
	IsMarried  bool       `json:"is_married"`
	Email      string     `json:"email"`
	HairColor  *HairColor `json:"hair_color"`
	WebsiteURL *string    `json:"website_url"`
	CreditCard *string    `json:"credit_card"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	Country    string     `json:"country"`
}

// PersonLocationOutFrom merges a person and a location into the combined
// response shape. Location fields are added to the person's public fields;
// the password is dropped the same way PersonOutFrom drops it.
func PersonLocationOutFrom(p Person, l Location) PersonLocationOut {
	return PersonLocationOut{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Age:        p.Age,
		IsMarried:  p.IsMarried,
		Email:      p.Email,
		HairColor:  p.HairColor,
		WebsiteURL: p.WebsiteURL,
		CreditCard: p.CreditCard,
		City:       l.City,
		State:      l.State,
		Country:    l.Country,
	}
}

// LoginMessage is the fixed message returned on successful login.
const LoginMessage = "Login successfully!"

// LoginOut is the login response: the username plus a fixed message.
// The password is accepted and validated but never echoed.
type LoginOut struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// LoginOutFrom builds a LoginOut for the given username with the default
// message.
func LoginOutFrom(username string) LoginOut {
	return LoginOut{
		Username: username,
		Message:  LoginMessage,
	}
}

// ImageOut describes an uploaded file: original filename, declared content
// type, and size in kilobytes rounded to two decimals.
type ImageOut struct {
	Filename string  `json:"filename"`
	Format   string  `json:"format"`
	SizeKB   float64 `json:"size(kb)"`
}

// ImageOutFrom derives upload metadata from a bound multipart file header.
func ImageOutFrom(file *multipart.FileHeader) ImageOut {
	return ImageOut{
		Filename: file.Filename,
		Format:   file.Header.Get("Content-Type"),
		SizeKB:   KilobytesOf(file.Size),
	}
}

// KilobytesOf converts a byte count to kilobytes rounded to two decimals,
// i.e. round(bytes/1024, 2).
func KilobytesOf(bytes int64) float64 {
	return math.Round(float64(bytes)/1024*100) / 100
}
