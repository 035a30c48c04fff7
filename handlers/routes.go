package handlers

import (
	"time"

	"sidomulyo/config"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole API on r.
func RegisterRoutes(r *gin.Engine, settings *config.Config) {
	window := time.Duration(settings.RateLimitWindowSeconds) * time.Second
	general := NewRateLimiter(settings.RateLimitGeneral, window,
		"Terlalu banyak permintaan, silakan coba lagi beberapa saat lagi.").Middleware()
	strict := NewRateLimiter(settings.RateLimitAuth, window,
		"Terlalu banyak percobaan login/register, silakan coba lagi nanti.").Middleware()

	auth := Authenticate()
	adminOnly := AdminOnly()
	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{auth, adminOnly, h}
	}

	r.Static("/uploads", settings.UploadDir)
	r.GET("/", Root)
	r.NoRoute(NotFound)

	api := r.Group("/api")
	api.GET("/health", HealthCheck)
	api.GET("/error-logs", admin(GetErrorLogs)...)
	api.DELETE("/error-logs", admin(ClearErrorLogs)...)

	// Auth routes
	a := api.Group("/auth")
	{
		a.POST("/register", strict, Register)
		a.POST("/login", strict, Login)
		a.GET("/me", auth, Me)
		a.PUT("/change-password", auth, ChangePassword)
		a.PUT("/profile", auth, UpdateProfile)
		a.DELETE("/account", auth, DeleteAccount)
	}

	// Berita routes
	b := api.Group("/berita", general)
	{
		b.GET("", ListBerita)
		b.GET("/kategori/:kategori", ListBeritaByKategori)
		b.GET("/:id", GetBerita)
		b.POST("", admin(CreateBerita)...)
		b.PUT("/:id", admin(UpdateBerita)...)
		b.DELETE("/:id", admin(DeleteBerita)...)
	}

	// Pengumuman routes
	p := api.Group("/pengumuman", general)
	{
		p.GET("", ListPengumuman)
		p.GET("/:id", GetPengumuman)
		p.POST("", admin(CreatePengumuman)...)
		p.PUT("/:id", admin(UpdatePengumuman)...)
		p.DELETE("/:id", admin(DeletePengumuman)...)
	}

	ag := api.Group("/agenda")
	{
		ag.GET("", ListAgenda)
		ag.GET("/:id", GetAgenda)
		ag.POST("", admin(CreateAgenda)...)
		ag.PUT("/:id", admin(UpdateAgenda)...)
		ag.DELETE("/:id", admin(DeleteAgenda)...)
	}

	pw := api.Group("/pariwisata", general)
	{
		pw.GET("", ListPariwisata)
		pw.GET("/:id", GetPariwisata)
		pw.POST("", admin(CreatePariwisata)...)
		pw.PUT("/:id", admin(UpdatePariwisata)...)
		pw.DELETE("/:id", admin(DeletePariwisata)...)
	}

	// Directory routes
	l := api.Group("/lembaga", general)
	{
		l.GET("", ListLembaga)
		l.GET("/:id", GetLembaga)
		l.POST("", admin(CreateLembaga)...)
		l.PUT("/:id", admin(UpdateLembaga)...)
		l.DELETE("/:id", admin(DeleteLembaga)...)
		l.POST("/:id/pengurus", admin(AddPengurus)...)
		l.PUT("/pengurus/:pengurusId", admin(UpdatePengurus)...)
		l.DELETE("/pengurus/:pengurusId", admin(DeletePengurus)...)
	}

	s := api.Group("/struktur", general)
	{
		s.GET("", ListStruktur)
		s.GET("/overview", admin(StrukturOverview)...)
		s.GET("/tipe/:tipe", ListStrukturByTipe)
		s.GET("/:id", GetStruktur)
		s.POST("", admin(CreateStruktur)...)
		s.PUT("/:id", admin(UpdateStruktur)...)
		s.DELETE("/:id", admin(DeleteStruktur)...)
	}

	// Layanan routes
	sr := api.Group("/surat", general)
	{
		sr.GET("", admin(ListSurat)...)
		sr.GET("/my-surat", auth, ListMySurat)
		sr.GET("/stats/overview", admin(SuratStats)...)
		sr.GET("/:id", auth, GetSurat)
		sr.POST("", auth, CreateSurat)
		sr.PUT("/:id/status", admin(UpdateSuratStatus)...)
		sr.DELETE("/:id", admin(DeleteSurat)...)
	}

	pg := api.Group("/pengaduan", general)
	{
		pg.GET("", admin(ListPengaduan)...)
		pg.GET("/my-pengaduan", auth, ListMyPengaduan)
		pg.GET("/stats/overview", admin(PengaduanStats)...)
		pg.GET("/:id", admin(GetPengaduan)...)
		pg.POST("", auth, CreatePengaduan)
		pg.PUT("/:id/status", admin(UpdatePengaduanStatus)...)
		pg.DELETE("/:id", admin(DeletePengaduan)...)
	}

	k := api.Group("/pesan-kontak")
	{
		k.POST("", CreatePesanKontak)
		k.GET("", admin(ListPesanKontak)...)
		k.GET("/kontak-desa", GetKontakDesa)
		k.PUT("/kontak-desa", admin(UpdateKontakDesa)...)
	}

	// File-backed routes
	st := api.Group("/statistik", general)
	{
		st.GET("", ListStatistik)
		st.GET("/overview", admin(StatistikOverview)...)
		st.GET("/kategori/:kategori", ListStatistikByKategori)
		st.POST("", admin(CreateStatistik)...)
		st.PUT("/bulk/update", admin(BulkUpdateStatistik)...)
		st.PUT("/:id", admin(UpdateStatistik)...)
		st.DELETE("/:id", admin(DeleteStatistik)...)
	}

	t := api.Group("/tentang", general)
	{
		t.GET("", GetTentang)
		t.GET("/admin/overview", admin(TentangOverview)...)
		t.GET("/:section", GetTentangSection)
		t.PUT("/selayang-pandang", admin(UpdateSelayangPandang)...)
		t.PUT("/visi-misi", admin(UpdateVisiMisi)...)
		t.PUT("/sejarah", admin(UpdateSejarah)...)
		t.PUT("/geografis", admin(UpdateGeografis)...)
		t.PUT("/demografis", admin(UpdateDemografis)...)
	}
}
