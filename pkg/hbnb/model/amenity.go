package model

type Amenity struct {
	Base
	Name string `json:"name" gorm:"size:128;not null"`
}

func NewAmenity() (*Amenity, error) {
	base, err := NewBase()
	if err != nil {
		return nil, err
	}
	return &Amenity{Base: base}, nil
}

func (a *Amenity) TypeName() string {
	return "Amenity"
}

func (a *Amenity) AttrMap() map[string]any {
	attrs := a.baseAttrs(a.TypeName())
	attrs["name"] = a.Name
	return attrs
}

func (a *Amenity) Apply(attrs map[string]any) {
	if name, ok := asString(attrs["name"]); ok {
		a.Name = name
	}
}
