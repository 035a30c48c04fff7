package models

import "time"

const (
	SuratMenunggu = "Menunggu"
	SuratDiproses = "Diproses"
	SuratSelesai  = "Selesai"

	PengaduanBaru     = "Baru"
	PengaduanDiproses = "Diproses"
	PengaduanSelesai  = "Selesai"
)

// Surat is a citizen's letter request.
type Surat struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           uint            `gorm:"column:user_id;index;not null" json:"user_id"`
	Nama             string          `gorm:"size:128;not null" json:"nama"`
	NIK              string          `gorm:"column:nik;size:16;not null" json:"nik"`
	JenisKelamin     string          `gorm:"size:16;not null" json:"jenis_kelamin"`
	TempatLahir      string          `gorm:"size:128;not null" json:"tempat_lahir"`
	TanggalLahir     string          `gorm:"size:10;not null" json:"tanggal_lahir"`
	Pekerjaan        string          `gorm:"size:128;not null" json:"pekerjaan"`
	Kewarganegaraan  string          `gorm:"size:64;not null" json:"kewarganegaraan"`
	Agama            string          `gorm:"size:32;not null" json:"agama"`
	NoHP             string          `gorm:"column:no_hp;size:20;not null" json:"no_hp"`
	AlamatKTP        string          `gorm:"column:alamat_ktp;type:text;not null" json:"alamat_ktp"`
	AlamatSekarang   string          `gorm:"type:text;not null" json:"alamat_sekarang"`
	JenisSurat       string          `gorm:"size:128;not null;index" json:"jenis_surat"`
	Status           string          `gorm:"size:16;not null;default:Menunggu;index" json:"status"`
	TanggalPengajuan time.Time       `gorm:"autoCreateTime;index" json:"tanggal_pengajuan"`
	Username         *string         `gorm:"->;-:migration" json:"username,omitempty"`
	UserNama         *string         `gorm:"->;-:migration" json:"user_nama,omitempty"`
	Lampiran         []LampiranSurat `gorm:"foreignKey:SuratID" json:"lampiran,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (Surat) TableName() string { return "surat" }

// SuratInput is the multipart form of POST /api/surat.
type SuratInput struct {
	Nama            string `form:"nama" binding:"required"`
	NIK             string `form:"nik" binding:"required,len=16"`
	JenisKelamin    string `form:"jenis_kelamin" binding:"required,oneof=Laki-laki Perempuan"`
	TempatLahir     string `form:"tempat_lahir" binding:"required"`
	TanggalLahir    string `form:"tanggal_lahir" binding:"required,datetime=2006-01-02"`
	Pekerjaan       string `form:"pekerjaan" binding:"required"`
	Kewarganegaraan string `form:"kewarganegaraan" binding:"required"`
	Agama           string `form:"agama" binding:"required"`
	NoHP            string `form:"no_hp" binding:"required"`
	AlamatKTP       string `form:"alamat_ktp" binding:"required"`
	AlamatSekarang  string `form:"alamat_sekarang" binding:"required"`
	JenisSurat      string `form:"jenis_surat" binding:"required"`
}

// LampiranSurat is a file attached to a surat.
type LampiranSurat struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SuratID          uint      `gorm:"column:surat_id;index;not null" json:"surat_id"`
	NamaFile         string    `gorm:"size:255;not null" json:"nama_file"`
	URLFile          string    `gorm:"column:url_file;not null" json:"url_file"`
	JenisPersyaratan string    `gorm:"size:128" json:"jenis_persyaratan"`
	CreatedAt        time.Time `json:"created_at"`
}

func (LampiranSurat) TableName() string { return "lampiran_surat" }

// Pengaduan is a citizen complaint.
type Pengaduan struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           *uint     `gorm:"column:user_id;index" json:"user_id"`
	Nama             string    `gorm:"size:128;not null" json:"nama"`
	Email            string    `gorm:"size:128;not null" json:"email"`
	NoHP             string    `gorm:"column:no_hp;size:20;not null" json:"no_hp"`
	Alamat           string    `gorm:"type:text;not null" json:"alamat"`
	Judul            string    `gorm:"size:255;not null" json:"judul"`
	Uraian           string    `gorm:"type:text;not null" json:"uraian"`
	Lampiran         *string   `json:"lampiran"`
	NIK              string    `gorm:"column:nik;size:16;not null" json:"nik"`
	TanggalPengaduan string    `gorm:"size:10;not null;index" json:"tanggal_pengaduan"`
	Status           string    `gorm:"size:16;not null;default:Baru;index" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Pengaduan) TableName() string { return "pengaduan" }

// PengaduanInput is the multipart form of POST /api/pengaduan.
type PengaduanInput struct {
	Nama             string `form:"nama"`
	Email            string `form:"email"`
	NoHP             string `form:"no_hp"`
	Alamat           string `form:"alamat"`
	Judul            string `form:"judul"`
	Uraian           string `form:"uraian"`
	NIK              string `form:"nik"`
	TanggalPengaduan string `form:"tanggal_pengaduan"`
}

// StatusUpdate is the payload of the PUT /:id/status routes.
type StatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// SuratStats counts surat per status.
type SuratStats struct {
	Total    int64 `json:"total"`
	Menunggu int64 `json:"menunggu"`
	Diproses int64 `json:"diproses"`
	Selesai  int64 `json:"selesai"`
}

// PengaduanStats counts pengaduan per status.
type PengaduanStats struct {
	Total    int64 `json:"total"`
	Baru     int64 `json:"baru"`
	Diproses int64 `json:"diproses"`
	Selesai  int64 `json:"selesai"`
}

// PesanKontak is a message sent through the public contact form.
type PesanKontak struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:128;not null" json:"nama"`
	Email     string    `gorm:"size:128;not null" json:"email"`
	NoHP      *string   `gorm:"column:no_hp;size:20" json:"no_hp"`
	Pesan     string    `gorm:"type:text;not null" json:"pesan"`
	CreatedAt time.Time `json:"created_at"`
}

func (PesanKontak) TableName() string { return "pesan_kontak" }

// PesanKontakInput is the payload of POST /api/pesan-kontak.
type PesanKontakInput struct {
	Nama  string `json:"nama" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	NoHP  string `json:"no_hp"`
	Pesan string `json:"pesan" binding:"required"`
}

// KontakDesa is the single row holding the village contact details.
type KontakDesa struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Alamat    string    `gorm:"type:text;not null" json:"alamat"`
	Email     string    `gorm:"size:128;not null" json:"email"`
	Whatsapp  *string   `gorm:"size:32" json:"whatsapp"`
	Instagram *string   `gorm:"size:128" json:"instagram"`
	Facebook  *string   `gorm:"size:128" json:"facebook"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KontakDesa) TableName() string { return "kontak_desa" }

// KontakDesaInput is the payload of PUT /api/pesan-kontak/kontak-desa.
type KontakDesaInput struct {
	Alamat    string  `json:"alamat" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Whatsapp  *string `json:"whatsapp"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
}
