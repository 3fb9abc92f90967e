package model

import "fmt"

// typeOrder lists every entity type in dependency order: parents before the
// types that reference them. Backends iterate in this order when flushing.
var typeOrder = []string{"State", "Amenity", "User", "City", "Place", "Review"}

var factories = map[string]func() Model{
	"State":   func() Model { return &State{} },
	"City":    func() Model { return &City{} },
	"Amenity": func() Model { return &Amenity{} },
	"User":    func() Model { return &User{} },
	"Place":   func() Model { return &Place{} },
	"Review":  func() Model { return &Review{} },
}

// TypeNames returns every entity type name in dependency order.
func TypeNames() []string {
	return append([]string{}, typeOrder...)
}

// IsTypeName reports whether name is a known entity type.
func IsTypeName(name string) bool {
	_, ok := factories[name]
	return ok
}

// NewByTypeName returns a zero-valued instance of the named type.
func NewByTypeName(name string) (Model, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("no such entity type: %s", name)
	}
	return factory(), nil
}

// FromAttrMap rehydrates an entity from a stored attribute map, using the
// __class__ discriminator to pick the type. This is the path backends use
// when reconstructing the object graph; ids and timestamps are restored,
// everything else goes through the type's bounded Apply.
func FromAttrMap(attrs map[string]any) (Model, error) {
	class, ok := asString(attrs["__class__"])
	if !ok {
		return nil, fmt.Errorf("attribute map has no __class__ discriminator")
	}

	m, err := NewByTypeName(class)
	if err != nil {
		return nil, err
	}

	m.GetBase().setBaseAttrs(attrs)
	m.Apply(attrs)

	return m, nil
}
