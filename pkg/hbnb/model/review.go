package model

type Review struct {
	Base
	PlaceID string `json:"place_id" gorm:"size:60;not null;index"`
	UserID  string `json:"user_id" gorm:"size:60;not null;index"`
	Text    string `json:"text" gorm:"type:text;not null"`
}

func NewReview() (*Review, error) {
	base, err := NewBase()
	if err != nil {
		return nil, err
	}
	return &Review{Base: base}, nil
}

func (r *Review) TypeName() string {
	return "Review"
}

func (r *Review) AttrMap() map[string]any {
	attrs := r.baseAttrs(r.TypeName())
	attrs["place_id"] = r.PlaceID
	attrs["user_id"] = r.UserID
	attrs["text"] = r.Text
	return attrs
}

func (r *Review) Apply(attrs map[string]any) {
	if placeID, ok := asString(attrs["place_id"]); ok {
		r.PlaceID = placeID
	}
	if userID, ok := asString(attrs["user_id"]); ok {
		r.UserID = userID
	}
	if text, ok := asString(attrs["text"]); ok {
		r.Text = text
	}
}
