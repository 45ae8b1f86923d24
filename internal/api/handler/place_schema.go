package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// placeRequest carries the client-editable listing fields. Field names match
// the web client's payloads; addedPhotos holds filenames previously returned
// by the upload endpoints.
type placeRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Address     string   `json:"address"     validate:"required"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"   validate:"required,gt=0"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
}

// updatePlaceRequest is placeRequest plus the target listing id; the update
// endpoint takes the id in the body rather than the path.
type updatePlaceRequest struct {
	ID string `json:"id" validate:"required"`
	placeRequest
}
