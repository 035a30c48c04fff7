package store

import "sidomulyo/models"

// DefaultTentang returns the placeholder about-page content used when no
// file exists yet. Every section is stamped with updatedAt.
func DefaultTentang(updatedAt string) models.Tentang {
	return models.Tentang{
		models.SectionSelayangPandang: {
			"id":        1,
			"judul":     "Selayang Pandang",
			"konten":    "Desa Sidomulyo adalah desa yang terletak di Kecamatan X, Kabupaten Y, Provinsi Z. Desa ini memiliki luas wilayah sekitar X hektar dengan jumlah penduduk sekitar X jiwa.",
			"gambar":    nil,
			"updatedAt": updatedAt,
		},
		models.SectionVisiMisi: {
			"id":    2,
			"judul": "Visi & Misi",
			"visi":  "Terwujudnya Desa Sidomulyo yang maju, mandiri, dan sejahtera",
			"misi": []any{
				"Meningkatkan kualitas pendidikan dan kesehatan masyarakat",
				"Mengembangkan perekonomian desa berbasis potensi lokal",
				"Membangun infrastruktur desa yang berkelanjutan",
				"Menguatkan kelembagaan desa dan partisipasi masyarakat",
			},
			"updatedAt": updatedAt,
		},
		models.SectionSejarah: {
			"id":        3,
			"judul":     "Sejarah Desa",
			"konten":    "Sejarah Desa Sidomulyo dimulai pada tahun XXXX ketika sekelompok masyarakat pertama kali menetap di wilayah ini. Nama 'Sidomulyo' diambil dari kata 'Sido' yang berarti menjadi dan 'Mulyo' yang berarti makmur.",
			"gambar":    nil,
			"updatedAt": updatedAt,
		},
		models.SectionGeografis: {
			"id":             4,
			"judul":          "Kondisi Geografis",
			"konten":         "Desa Sidomulyo memiliki topografi yang bervariasi dari dataran rendah hingga perbukitan. Wilayah ini dialiri oleh beberapa sungai dan memiliki tanah yang subur untuk pertanian.",
			"batasUtara":     "Desa X",
			"batasSelatan":   "Desa Y",
			"batasBarat":     "Desa Z",
			"batasTimur":     "Desa W",
			"luasWilayah":    "X hektar",
			"jumlahPenduduk": "X jiwa",
			"gambar":         nil,
			"updatedAt":      updatedAt,
		},
		models.SectionDemografis: {
			"id":              5,
			"judul":           "Kondisi Demografis",
			"konten":          "Masyarakat Desa Sidomulyo terdiri dari berbagai suku dan agama yang hidup rukun berdampingan. Mayoritas penduduk bekerja sebagai petani dan pedagang.",
			"jumlahKK":        "X KK",
			"jumlahLakiLaki":  "X jiwa",
			"jumlahPerempuan": "X jiwa",
			"agama": map[string]any{
				"Islam":   "X%",
				"Kristen": "X%",
				"Katolik": "X%",
				"Hindu":   "X%",
				"Buddha":  "X%",
			},
			"pendidikan": map[string]any{
				"Tidak Sekolah": "X%",
				"SD":            "X%",
				"SMP":           "X%",
				"SMA":           "X%",
				"D3/S1":         "X%",
				"S2/S3":         "X%",
			},
			"updatedAt": updatedAt,
		},
	}
}
