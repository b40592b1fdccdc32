package entity

import "strings"

// Speciality is the closed set of practitioner specialities a doctor can hold.
type Speciality string

const (
	SpecialityDokterUmum             Speciality = "DOKTER_UMUM"
	SpecialityDokterGigi             Speciality = "DOKTER_GIGI"
	SpecialitySpesialisAnak          Speciality = "SPESIALIS_ANAK"
	SpecialitySpesialisKulit         Speciality = "SPESIALIS_KULIT"
	SpecialitySpesialisPenyakitDalam Speciality = "SPESIALIS_PENYAKIT_DALAM"
	SpecialitySpesialisMata          Speciality = "SPESIALIS_MATA"
	SpecialitySpesialisTHT           Speciality = "SPESIALIS_THT"
	SpecialitySpesialisJantung       Speciality = "SPESIALIS_JANTUNG"
	SpecialitySpesialisSaraf         Speciality = "SPESIALIS_SARAF"
	SpecialitySpesialisKandungan     Speciality = "SPESIALIS_KANDUNGAN"
)

var specialityDisplayNames = map[Speciality]string{
	SpecialityDokterUmum:             "Dokter Umum",
	SpecialityDokterGigi:             "Dokter Gigi",
	SpecialitySpesialisAnak:          "Spesialis Anak",
	SpecialitySpesialisKulit:         "Spesialis Kulit",
	SpecialitySpesialisPenyakitDalam: "Spesialis Penyakit Dalam",
	SpecialitySpesialisMata:          "Spesialis Mata",
	SpecialitySpesialisTHT:           "Spesialis THT",
	SpecialitySpesialisJantung:       "Spesialis Jantung",
	SpecialitySpesialisSaraf:         "Spesialis Saraf",
	SpecialitySpesialisKandungan:     "Spesialis Kandungan",
}

// Specialities returns every known speciality in declaration order.
func Specialities() []Speciality {
	return []Speciality{
		SpecialityDokterUmum,
		SpecialityDokterGigi,
		SpecialitySpesialisAnak,
		SpecialitySpesialisKulit,
		SpecialitySpesialisPenyakitDalam,
		SpecialitySpesialisMata,
		SpecialitySpesialisTHT,
		SpecialitySpesialisJantung,
		SpecialitySpesialisSaraf,
		SpecialitySpesialisKandungan,
	}
}

// DisplayName returns the human readable name, e.g. "Dokter Umum".
func (s Speciality) DisplayName() string {
	return specialityDisplayNames[s]
}

// IsValid reports whether s is one of the enumerated specialities.
func (s Speciality) IsValid() bool {
	_, ok := specialityDisplayNames[s]
	return ok
}

// ParseSpeciality accepts either the display name ("Dokter Umum") or the
// constant name ("DOKTER_UMUM"), ignoring case.
func ParseSpeciality(value string) (Speciality, bool) {
	for _, s := range Specialities() {
		if strings.EqualFold(value, string(s)) || strings.EqualFold(value, s.DisplayName()) {
			return s, true
		}
	}
	return "", false
}
