package storage

import (
	"fmt"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
)

// Place-amenity link maintenance. Both ends must be live at link time and
// the pair set stays duplicate free. The change becomes durable on the next
// Save: inline on the place in the file backend, as place_amenity junction
// rows in the database backend.

// LinkAmenity links the amenity to the place. The returned bool is false
// when the pair already existed.
func LinkAmenity(s Storage, place *model.Place, amenity *model.Amenity) (bool, error) {
	if err := checkLinkEnds(s, place, amenity); err != nil {
		return false, err
	}

	if place.HasAmenity(amenity.ID) {
		return false, nil
	}

	place.AddAmenity(amenity.ID)
	place.Touch()
	s.New(place)

	return true, nil
}

// UnlinkAmenity removes the pair. The returned bool is false when no such
// link existed.
func UnlinkAmenity(s Storage, place *model.Place, amenity *model.Amenity) (bool, error) {
	if err := checkLinkEnds(s, place, amenity); err != nil {
		return false, err
	}

	if !place.HasAmenity(amenity.ID) {
		return false, nil
	}

	place.RemoveAmenity(amenity.ID)
	place.Touch()
	s.New(place)

	return true, nil
}

func checkLinkEnds(s Storage, place *model.Place, amenity *model.Amenity) error {
	if s.Get("Place", place.ID) == nil {
		return fmt.Errorf("no such place: %s", place.ID)
	}
	if s.Get("Amenity", amenity.ID) == nil {
		return fmt.Errorf("no such amenity: %s", amenity.ID)
	}
	return nil
}
