package proto

type RegisterUserRequest struct {
	Username string `json:"username"`
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

type RegisterUserResponse struct{}

type GetSaltRequest struct {
	Username string `json:"username"`
}

type GetSaltResponse struct {
	Salt []byte `json:"salt"`
}

type LoginRequest struct {
	Username          string `json:"username"`
	VerifierCandidate []byte `json:"verifier_candidate"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	Profile     *Profile `json:"profile,omitempty"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

// Profile is the caller profile. Sex 0 means unset.
type Profile struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Status   int32  `json:"status"`
	Sex      int32  `json:"sex"`
}

type GetProfileRequest struct {
	UserId string `json:"user_id"`
}

type GetProfileResponse struct {
	Profile *Profile `json:"profile,omitempty"`
}

// UpdateProfileRequest changes only the fields that are set.
type UpdateProfileRequest struct {
	UserId string `json:"user_id"`
	Status *int32 `json:"status,omitempty"`
	Sex    *int32 `json:"sex,omitempty"`
}

type CreateEntryRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Images    []string `json:"images"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Location  string   `json:"location"`
}

// CreateEntryResponse carries the acceptance discriminant: Code 0 means the
// entry was stored.
type CreateEntryResponse struct {
	Code    int32  `json:"code"`
	Message string `json:"message,omitempty"`
	EntryId string `json:"entry_id,omitempty"`
}

type PresignUploadsRequest struct {
	Count    int32  `json:"count"`
	Category string `json:"category"`
}

type PresignedUpload struct {
	Key string `json:"key"`
	Url string `json:"url"`
}

type PresignUploadsResponse struct {
	Uploads []*PresignedUpload `json:"uploads"`
}
