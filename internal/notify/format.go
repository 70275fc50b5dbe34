package notify

import (
	"fmt"
	"strings"

	"github.com/shamsy/home-services-api/internal/models"
	"github.com/shamsy/home-services-api/internal/timezone"
)

// FormatServiceRequestMessage builds the staff-facing Telegram text for a
// new request. Arabic titles are preferred, falling back to English.
func FormatServiceRequestMessage(req *models.ServiceRequest, tz string) string {
	titles := make([]string, 0, len(req.Services))
	for i := range req.Services {
		s := &req.Services[i]
		if s.TitleAr != "" {
			titles = append(titles, s.TitleAr)
		} else {
			titles = append(titles, s.Title)
		}
	}

	serviceTitles := strings.Join(titles, ", ")
	if serviceTitles == "" {
		serviceTitles = "بدون خدمات"
	}

	details := req.Details
	if details == "" {
		details = "لا يوجد"
	}

	created := req.CreatedAt.In(timezone.Location(tz)).Format("2006-01-02 15:04")

	return fmt.Sprintf(
		"📥 <b>طلب خدمة جديد</b>\n\n"+
			"👤 الاسم: %s\n"+
			"📞 الهاتف: %s\n"+
			"🧾 الخدمات: %s\n"+
			"📅 اليوم المطلوب: %s\n"+
			"📍 العنوان: %s\n"+
			"📌 تفاصيل إضافية: %s\n"+
			"⏰ تم الإنشاء في: %s",
		req.User.FullName,
		req.PhoneNumber,
		serviceTitles,
		req.ServiceDay,
		req.Address,
		details,
		created,
	)
}
