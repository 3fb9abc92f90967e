package model

type City struct {
	Base
	StateID string  `json:"state_id" gorm:"size:60;not null;index"`
	Name    string  `json:"name" gorm:"size:128;not null"`
	Places  []Place `json:"-" gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
}

func NewCity() (*City, error) {
	base, err := NewBase()
	if err != nil {
		return nil, err
	}
	return &City{Base: base}, nil
}

func (c *City) TypeName() string {
	return "City"
}

func (c *City) AttrMap() map[string]any {
	attrs := c.baseAttrs(c.TypeName())
	attrs["state_id"] = c.StateID
	attrs["name"] = c.Name
	return attrs
}

func (c *City) Apply(attrs map[string]any) {
	if stateID, ok := asString(attrs["state_id"]); ok {
		c.StateID = stateID
	}
	if name, ok := asString(attrs["name"]); ok {
		c.Name = name
	}
}
