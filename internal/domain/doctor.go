package domain

import "strings"

type Doctor struct {
	ID        string
	Name      string
	Specialty string
	ImageURL  string
}

var directory = []Doctor{
	{ID: "1", Name: "Dr. Sinta Jaya", Specialty: "Penyakit Dalam", ImageURL: "https://i.pravatar.cc/100?img=1"},
	{ID: "2", Name: "Dr. Andi Teguh", Specialty: "Anak", ImageURL: "https://i.pravatar.cc/100?img=2"},
	{ID: "3", Name: "Dr. Rina Kusuma", Specialty: "Jantung", ImageURL: "https://i.pravatar.cc/100?img=3"},
	{ID: "4", Name: "Dr. Budi Prakoso", Specialty: "Umum", ImageURL: "https://i.pravatar.cc/100?img=4"},
}

var searchSuggestions = []string{"medic", "anak", "jantung", "umum"}

func Doctors() []Doctor {
	return append([]Doctor(nil), directory...)
}

func SearchSuggestions() []string {
	return append([]string(nil), searchSuggestions...)
}

// SearchDoctors matches term case-insensitively against name and specialty
// concatenated. An empty term returns the whole directory.
func SearchDoctors(term string) []Doctor {
	needle := strings.ToLower(strings.TrimSpace(term))
	result := make([]Doctor, 0, len(directory))
	for _, doctor := range directory {
		if strings.Contains(strings.ToLower(doctor.Name+doctor.Specialty), needle) {
			result = append(result, doctor)
		}
	}
	return result
}
