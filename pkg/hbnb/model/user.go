package model

// User owns places and reviews. Password is write-only: it is settable
// through Apply but never appears in the attribute map.
type User struct {
	Base
	Email     string   `json:"email" gorm:"size:128;not null"`
	Password  string   `json:"-" gorm:"size:128;not null"`
	FirstName string   `json:"first_name" gorm:"size:128"`
	LastName  string   `json:"last_name" gorm:"size:128"`
	Places    []Place  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews   []Review `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func NewUser() (*User, error) {
	base, err := NewBase()
	if err != nil {
		return nil, err
	}
	return &User{Base: base}, nil
}

func (u *User) TypeName() string {
	return "User"
}

func (u *User) AttrMap() map[string]any {
	attrs := u.baseAttrs(u.TypeName())
	attrs["email"] = u.Email
	attrs["first_name"] = u.FirstName
	attrs["last_name"] = u.LastName
	return attrs
}

// SnapshotMap is AttrMap plus the write-only password, so the file
// backend's snapshot does not drop credentials across a reload.
func (u *User) SnapshotMap() map[string]any {
	attrs := u.AttrMap()
	attrs["password"] = u.Password
	return attrs
}

func (u *User) Apply(attrs map[string]any) {
	if email, ok := asString(attrs["email"]); ok {
		u.Email = email
	}
	if password, ok := asString(attrs["password"]); ok {
		u.Password = password
	}
	if firstName, ok := asString(attrs["first_name"]); ok {
		u.FirstName = firstName
	}
	if lastName, ok := asString(attrs["last_name"]); ok {
		u.LastName = lastName
	}
}
