package public

import "github.com/Kyz7/corporate-site/internal/locale"

var labels = map[locale.Locale]map[string]string{
	locale.TR: {
		"home":              "Ana Sayfa",
		"products":          "Ürünler",
		"industries":        "Sektörler",
		"blog":              "Blog",
		"catalogs":          "Kataloglar",
		"videos":            "Videolar",
		"contact":           "İletişim",
		"references":        "Referanslarımız",
		"latestPosts":       "Son Yazılar",
		"readMore":          "Devamını oku",
		"download":          "İndir",
		"relatedIndustries": "Kullanıldığı Sektörler",
		"relatedProducts":   "İlgili Ürünler",
		"features":          "Özellikler",
		"applications":      "Uygulama Alanları",
		"challenges":        "Sektörün İhtiyaçları",
		"solutions":         "Çözümlerimiz",
		"categories":        "Kategoriler",
		"noContent":         "Bu bölümde henüz içerik yok.",
		"contactForm":       "Bize Yazın",
		"quoteForm":         "Teklif İsteyin",
		"jobForm":           "İş Başvurusu",
		"name":              "Ad Soyad",
		"email":             "E-posta",
		"phone":             "Telefon",
		"company":           "Firma",
		"subject":           "Konu",
		"message":           "Mesaj",
		"product":           "Ürün",
		"quantity":          "Miktar",
		"position":          "Pozisyon",
		"cv":                "CV (PDF)",
		"send":              "Gönder",
		"sent":              "Teşekkürler, mesajınız alındı.",
		"failed":            "Gönderilemedi, lütfen alanları kontrol edin.",
		"address":           "Adres",
		"workingHours":      "Çalışma Saatleri",
		"notFoundTitle":     "Sayfa bulunamadı",
		"notFoundText":      "Aradığınız sayfa taşınmış veya kaldırılmış olabilir.",
		"errorTitle":        "Bir hata oluştu",
		"errorText":         "Lütfen daha sonra tekrar deneyin.",
		"backHome":          "Ana sayfaya dön",
		"homeDescription":   "Endüstriyel üretim çözümleri",
	},
	locale.EN: {
		"home":              "Home",
		"products":          "Products",
		"industries":        "Industries",
		"blog":              "Blog",
		"catalogs":          "Catalogs",
		"videos":            "Videos",
		"contact":           "Contact",
		"references":        "References",
		"latestPosts":       "Latest Posts",
		"readMore":          "Read more",
		"download":          "Download",
		"relatedIndustries": "Industries Served",
		"relatedProducts":   "Related Products",
		"features":          "Features",
		"applications":      "Applications",
		"challenges":        "Industry Needs",
		"solutions":         "Our Solutions",
		"categories":        "Categories",
		"noContent":         "There is no content here yet.",
		"contactForm":       "Write to Us",
		"quoteForm":         "Request a Quote",
		"jobForm":           "Job Application",
		"name":              "Full name",
		"email":             "Email",
		"phone":             "Phone",
		"company":           "Company",
		"subject":           "Subject",
		"message":           "Message",
		"product":           "Product",
		"quantity":          "Quantity",
		"position":          "Position",
		"cv":                "CV (PDF)",
		"send":              "Send",
		"sent":              "Thank you, your message has been received.",
		"failed":            "Could not send, please check the fields.",
		"address":           "Address",
		"workingHours":      "Working Hours",
		"notFoundTitle":     "Page not found",
		"notFoundText":      "The page you are looking for may have been moved or removed.",
		"errorTitle":        "Something went wrong",
		"errorText":         "Please try again later.",
		"backHome":          "Back to home",
		"homeDescription":   "Industrial manufacturing solutions",
	},
}

func label(l locale.Locale, key string) string {
	return labels[l][key]
}

// labelText returns both translations of a UI label.
func labelText(key string) locale.Text {
	return locale.T(labels[locale.TR][key], labels[locale.EN][key])
}
