package model

// Place belongs to one City and one User. The amenity link is carried two
// ways: AmenityIDs is the backend-independent form used by attribute maps
// and by the file backend's snapshot, while Amenities backs the
// place_amenity junction table in the database backend.
type Place struct {
	Base
	CityID          string    `json:"city_id" gorm:"size:60;not null;index"`
	UserID          string    `json:"user_id" gorm:"size:60;not null;index"`
	Name            string    `json:"name" gorm:"size:128;not null"`
	Description     string    `json:"description" gorm:"type:text"`
	NumberRooms     int       `json:"number_rooms" gorm:"not null;default:0"`
	NumberBathrooms int       `json:"number_bathrooms" gorm:"not null;default:0"`
	MaxGuest        int       `json:"max_guest" gorm:"not null;default:0"`
	PriceByNight    int       `json:"price_by_night" gorm:"not null;default:0"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Reviews         []Review  `json:"-" gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
	Amenities       []Amenity `json:"-" gorm:"many2many:place_amenity;constraint:OnDelete:CASCADE"`
	AmenityIDs      []string  `json:"amenity_ids" gorm:"-"`
}

func NewPlace() (*Place, error) {
	base, err := NewBase()
	if err != nil {
		return nil, err
	}
	return &Place{Base: base}, nil
}

func (p *Place) TypeName() string {
	return "Place"
}

func (p *Place) AttrMap() map[string]any {
	attrs := p.baseAttrs(p.TypeName())
	attrs["city_id"] = p.CityID
	attrs["user_id"] = p.UserID
	attrs["name"] = p.Name
	attrs["description"] = p.Description
	attrs["number_rooms"] = p.NumberRooms
	attrs["number_bathrooms"] = p.NumberBathrooms
	attrs["max_guest"] = p.MaxGuest
	attrs["price_by_night"] = p.PriceByNight
	attrs["latitude"] = p.Latitude
	attrs["longitude"] = p.Longitude
	attrs["amenity_ids"] = append([]string{}, p.AmenityIDs...)
	return attrs
}

func (p *Place) Apply(attrs map[string]any) {
	if cityID, ok := asString(attrs["city_id"]); ok {
		p.CityID = cityID
	}
	if userID, ok := asString(attrs["user_id"]); ok {
		p.UserID = userID
	}
	if name, ok := asString(attrs["name"]); ok {
		p.Name = name
	}
	if description, ok := asString(attrs["description"]); ok {
		p.Description = description
	}
	if n, ok := asInt(attrs["number_rooms"]); ok {
		p.NumberRooms = n
	}
	if n, ok := asInt(attrs["number_bathrooms"]); ok {
		p.NumberBathrooms = n
	}
	if n, ok := asInt(attrs["max_guest"]); ok {
		p.MaxGuest = n
	}
	if n, ok := asInt(attrs["price_by_night"]); ok {
		p.PriceByNight = n
	}
	if f, ok := asFloat(attrs["latitude"]); ok {
		p.Latitude = f
	}
	if f, ok := asFloat(attrs["longitude"]); ok {
		p.Longitude = f
	}
	if ids, ok := asStringSlice(attrs["amenity_ids"]); ok {
		p.AmenityIDs = ids
	}
}

// HasAmenity reports whether the amenity id is already linked.
func (p *Place) HasAmenity(amenityID string) bool {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return true
		}
	}
	return false
}

// AddAmenity links the amenity id, keeping the link set duplicate free.
func (p *Place) AddAmenity(amenityID string) {
	if !p.HasAmenity(amenityID) {
		p.AmenityIDs = append(p.AmenityIDs, amenityID)
	}
}

// RemoveAmenity drops the amenity id from the link set.
func (p *Place) RemoveAmenity(amenityID string) {
	ids := p.AmenityIDs[:0]
	for _, id := range p.AmenityIDs {
		if id != amenityID {
			ids = append(ids, id)
		}
	}
	p.AmenityIDs = ids
}
