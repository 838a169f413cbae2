package models

// Profile is the caller profile as the server reports it.
type Profile struct {
	Id       string
	Username string
	Status   int32
	// Sex is 0 while unset.
	Sex int32
}

// HasSex reports whether the profile carries a sex value.
func (p Profile) HasSex() bool {
	return p.Sex != 0
}
