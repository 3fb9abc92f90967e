package model

type State struct {
	Base
	Name   string `json:"name" gorm:"size:128;not null"`
	Cities []City `json:"-" gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE"`
}

func NewState() (*State, error) {
	base, err := NewBase()
	if err != nil {
		return nil, err
	}
	return &State{Base: base}, nil
}

func (s *State) TypeName() string {
	return "State"
}

func (s *State) AttrMap() map[string]any {
	attrs := s.baseAttrs(s.TypeName())
	attrs["name"] = s.Name
	return attrs
}

func (s *State) Apply(attrs map[string]any) {
	if name, ok := asString(attrs["name"]); ok {
		s.Name = name
	}
}
