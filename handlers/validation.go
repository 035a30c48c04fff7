package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"sidomulyo/core"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	hhmmPattern   = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	webURLPattern = regexp.MustCompile(`^https?://.+`)
)

// RegisterValidators installs the portal's custom binding rules on gin's
// validator and makes field errors report json/form names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	rules := map[string]validator.Func{
		"hhmm": func(fl validator.FieldLevel) bool {
			return hhmmPattern.MatchString(fl.Field().String())
		},
		"phone_id": func(fl validator.FieldLevel) bool {
			return service.ValidPhone(fl.Field().String())
		},
		"web_url": func(fl validator.FieldLevel) bool {
			s := strings.TrimSpace(fl.Field().String())
			return s == "" || webURLPattern.MatchString(s)
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

var fieldLabels = map[string]string{
	"title":      "Judul",
	"content":    "Konten",
	"jumlahKK":   "Jumlah KK",
	"nik":        "NIK",
	"no_hp":      "Nomor HP",
	"alamat_ktp": "Alamat KTP",
}

// fieldLabel turns "nama_lembaga" or "batasUtara" into "Nama lembaga" / "Batas utara".
func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0:
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ruleMessages override the generated message for a field/rule pair.
var ruleMessages = map[string]string{
	"value.required":      "Value harus berupa angka positif",
	"misi.required":       "Misi harus berupa array dengan minimal 1 item",
	"misi.min":            "Misi harus berupa array dengan minimal 1 item",
	"agama.required":      "Data agama harus berupa object",
	"pendidikan.required": "Data pendidikan harus berupa object",
	"newPassword.min":     "Password baru minimal 6 karakter",
}

// fieldMessages apply to every rule except required on that field.
var fieldMessages = map[string]string{
	"nik":           "NIK harus 16 digit",
	"value":         "Value harus berupa angka positif",
	"color":         "Color harus berupa hex color",
	"gambar":        "Gambar harus berupa URL yang valid",
	"waktu":         "Format waktu harus HH:MM",
	"no_hp":         "Nomor HP tidak valid. Gunakan format: 081234567890",
	"email":         "Email tidak valid",
	"jenis_kelamin": "Jenis kelamin tidak valid",
	"kategori":      "Kategori tidak valid",
	"status":        "Status tidak valid",
	"tipe":          "Tipe tidak valid",
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	if msg, ok := ruleMessages[field+"."+fe.Tag()]; ok {
		return msg
	}
	// dive errors on list elements are named like misi[2]
	if i := strings.IndexByte(field, '['); i > 0 && fe.Tag() == "required" {
		return "Setiap " + strings.ToLower(fieldLabel(field[:i])) + " tidak boleh kosong"
	}

	label := fieldLabel(field)
	switch fe.Tag() {
	case "required":
		return label + " wajib diisi"
	case "datetime":
		return label + " tidak valid"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s minimal %s karakter", label, fe.Param())
		}
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return label + " tidak valid"
}

// fieldPath drops the root struct name from a validator namespace, keeping
// indexes such as statistik[0].value.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// bindingError converts a bind failure into the service error model.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(core.ValidationErrors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, core.FieldError{Field: fieldPath(fe), Msg: fieldMessage(fe)})
		}
		return out
	}
	return core.NewBadRequestError("Format data tidak valid")
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, "bind", bindingError(err))
		return false
	}
	return true
}

// bindForm binds multipart/urlencoded (or JSON) bodies by content type.
func bindForm(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		respondError(c, "bind", bindingError(err))
		return false
	}
	return true
}
