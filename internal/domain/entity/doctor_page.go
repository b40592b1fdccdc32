package entity

// DoctorPage is one window of an ordered doctor search result.
type DoctorPage struct {
	Content       []Doctor
	TotalElements int
	TotalPages    int
	Page          int
	Size          int
}
