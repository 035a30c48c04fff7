package models

const (
	SectionSelayangPandang = "selayangPandang"
	SectionVisiMisi        = "visiMisi"
	SectionSejarah         = "sejarah"
	SectionGeografis       = "geografis"
	SectionDemografis      = "demografis"
)

// TentangSections is the fixed key set of the about page, in display order.
var TentangSections = []string{
	SectionSelayangPandang,
	SectionVisiMisi,
	SectionSejarah,
	SectionGeografis,
	SectionDemografis,
}

// IsTentangSection reports whether key is one of the fixed about-page sections.
func IsTentangSection(key string) bool {
	for _, s := range TentangSections {
		if s == key {
			return true
		}
	}
	return false
}

// TentangSection is the free-form content of one about-page section.
// Every section carries at least "id", "judul" and "updatedAt".
type TentangSection map[string]any

// UpdatedAt returns the section's updatedAt stamp, or "" when absent.
func (s TentangSection) UpdatedAt() string {
	v, _ := s["updatedAt"].(string)
	return v
}

// Judul returns the section title, or "" when absent.
func (s TentangSection) Judul() string {
	v, _ := s["judul"].(string)
	return v
}

// Tentang maps section keys to their content.
type Tentang map[string]TentangSection

// TentangSummary is one row of the admin overview.
type TentangSummary struct {
	Section   string `json:"section"`
	Judul     string `json:"judul"`
	UpdatedAt string `json:"updatedAt"`
}

// TentangTextInput updates selayangPandang and sejarah.
type TentangTextInput struct {
	Judul             string  `json:"judul" binding:"required"`
	Konten            string  `json:"konten" binding:"required"`
	Gambar            *string `json:"gambar" binding:"omitempty,web_url"`
	ExpectedUpdatedAt string  `json:"expectedUpdatedAt"`
}

// VisiMisiInput updates visiMisi.
type VisiMisiInput struct {
	Judul             string   `json:"judul" binding:"required"`
	Visi              string   `json:"visi" binding:"required"`
	Misi              []string `json:"misi" binding:"required,min=1,dive,required"`
	ExpectedUpdatedAt string   `json:"expectedUpdatedAt"`
}

// GeografisInput updates geografis.
type GeografisInput struct {
	Judul             string  `json:"judul" binding:"required"`
	Konten            string  `json:"konten" binding:"required"`
	BatasUtara        string  `json:"batasUtara" binding:"required"`
	BatasSelatan      string  `json:"batasSelatan" binding:"required"`
	BatasBarat        string  `json:"batasBarat" binding:"required"`
	BatasTimur        string  `json:"batasTimur" binding:"required"`
	LuasWilayah       string  `json:"luasWilayah" binding:"required"`
	JumlahPenduduk    string  `json:"jumlahPenduduk" binding:"required"`
	Gambar            *string `json:"gambar" binding:"omitempty,web_url"`
	ExpectedUpdatedAt string  `json:"expectedUpdatedAt"`
}

// DemografisInput updates demografis.
type DemografisInput struct {
	Judul             string         `json:"judul" binding:"required"`
	Konten            string         `json:"konten" binding:"required"`
	JumlahKK          string         `json:"jumlahKK" binding:"required"`
	JumlahLakiLaki    string         `json:"jumlahLakiLaki" binding:"required"`
	JumlahPerempuan   string         `json:"jumlahPerempuan" binding:"required"`
	Agama             map[string]any `json:"agama" binding:"required"`
	Pendidikan        map[string]any `json:"pendidikan" binding:"required"`
	ExpectedUpdatedAt string         `json:"expectedUpdatedAt"`
}
