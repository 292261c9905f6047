package models

import "errors"

var ErrUnknownPerson = errors.New("unknown person")

// Person is one of the two tracked people. The set is closed; use ParsePerson
// to turn a path segment into a Person.
type Person string

const (
	PersonSajeel  Person = "sajeel"
	PersonMahrukh Person = "mahrukh"
)

var People = []Person{PersonSajeel, PersonMahrukh}

func ParsePerson(s string) (Person, error) {
	switch Person(s) {
	case PersonSajeel, PersonMahrukh:
		return Person(s), nil
	}
	return "", ErrUnknownPerson
}

// Partner returns the other tracked person.
func (p Person) Partner() Person {
	switch p {
	case PersonSajeel:
		return PersonMahrukh
	case PersonMahrukh:
		return PersonSajeel
	}
	panic("models: partner of unknown person " + string(p))
}

func (p Person) DisplayName() string {
	switch p {
	case PersonSajeel:
		return "Sajeel"
	case PersonMahrukh:
		return "Mahrukh"
	}
	return string(p)
}
